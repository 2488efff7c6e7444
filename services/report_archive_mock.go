package services

import (
	"context"
	"fmt"
	"sync"
)

// MockReportArchive is an in-memory ReportArchive for testing.
type MockReportArchive struct {
	stored map[string][]byte
	mu     sync.RWMutex
}

// NewMockReportArchive creates a new mock archive
func NewMockReportArchive() *MockReportArchive {
	return &MockReportArchive{stored: make(map[string][]byte)}
}

// SetAsMockForTesting sets this mock as the global archive instance for testing
func (m *MockReportArchive) SetAsMockForTesting() {
	SetReportArchive(m)
}

// StoreReport records the PDF under a deterministic key.
func (m *MockReportArchive) StoreReport(_ context.Context, filename string, pdf []byte) (string, error) {
	key := fmt.Sprintf("reports/mock_%s", filename)

	m.mu.Lock()
	m.stored[key] = pdf
	m.mu.Unlock()

	return key, nil
}

// StoredReports returns a copy of everything archived so far (for test assertions)
func (m *MockReportArchive) StoredReports() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]byte, len(m.stored))
	for k, v := range m.stored {
		out[k] = v
	}
	return out
}

// Clear removes all archived reports.
func (m *MockReportArchive) Clear() {
	m.mu.Lock()
	m.stored = make(map[string][]byte)
	m.mu.Unlock()
}
