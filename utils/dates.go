package utils

import (
	"fmt"
	"time"
)

// Date formats used by the report pipeline. These mirror the US short
// formats the reports have always used.
const (
	shortDateLayout = "1/2/2006"
	timestampLayout = "1/2/2006, 3:04:05 PM"
	queryDateLayout = "2006-01-02"
)

// ShortDate formats a timestamp as a short date, e.g. "3/14/2026".
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// ShortDateOrNA formats an optional timestamp as a short date, or "N/A"
// when the timestamp is unset.
func ShortDateOrNA(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return ShortDate(*t)
}

// Timestamp formats a full date-time, e.g. "3/14/2026, 9:05:07 AM".
// Used for the "Generated on" line of every report.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// ParseReportDate parses a report query date parameter. Plain dates
// ("2026-03-14") and RFC 3339 timestamps are accepted; a plain date parses
// to midnight, which keeps the createdAt range filter inclusive at both
// boundaries.
func ParseReportDate(value string) (time.Time, error) {
	if t, err := time.Parse(queryDateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}
