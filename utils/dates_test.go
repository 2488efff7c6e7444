package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortDate(t *testing.T) {
	d := time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "3/14/2026", ShortDate(d))

	// No zero padding on single-digit months and days
	d = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1/2/2026", ShortDate(d))
}

func TestShortDateOrNA(t *testing.T) {
	assert.Equal(t, "N/A", ShortDateOrNA(nil))

	d := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12/31/2025", ShortDateOrNA(&d))
}

func TestTimestamp(t *testing.T) {
	d := time.Date(2026, 3, 14, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "3/14/2026, 9:05:07 AM", Timestamp(d))

	d = time.Date(2026, 3, 14, 21, 5, 7, 0, time.UTC)
	assert.Equal(t, "3/14/2026, 9:05:07 PM", Timestamp(d))
}

func TestParseReportDate(t *testing.T) {
	got, err := ParseReportDate("2026-03-14")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseReportDate("2026-03-14T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC), got)

	_, err = ParseReportDate("14/03/2026")
	assert.Error(t, err)

	_, err = ParseReportDate("")
	assert.Error(t, err)
}
