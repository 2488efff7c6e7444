package services

import (
	"context"
	"errors"
	"sync"
)

// MockPDFRenderer is a PDFRenderer for testing. It records every HTML
// document it is asked to render and returns a deterministic byte stream.
type MockPDFRenderer struct {
	renderedHTML []string
	failWith     error
	mu           sync.Mutex
}

// NewMockPDFRenderer creates a new mock renderer
func NewMockPDFRenderer() *MockPDFRenderer {
	return &MockPDFRenderer{}
}

// SetAsMockForTesting sets this mock as the global renderer instance for testing
func (m *MockPDFRenderer) SetAsMockForTesting() {
	SetPDFRenderer(m)
}

// FailWith makes every subsequent render fail with the given message.
func (m *MockPDFRenderer) FailWith(message string) {
	m.mu.Lock()
	m.failWith = errors.New(message)
	m.mu.Unlock()
}

// RenderPDF records the HTML and returns a fake PDF payload.
func (m *MockPDFRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}
	m.renderedHTML = append(m.renderedHTML, html)
	return []byte("%PDF-1.4 mock"), nil
}

// RenderedHTML returns the documents rendered so far (for test assertions)
func (m *MockPDFRenderer) RenderedHTML() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.renderedHTML))
	copy(out, m.renderedHTML)
	return out
}

// LastHTML returns the most recently rendered document, or "".
func (m *MockPDFRenderer) LastHTML() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.renderedHTML) == 0 {
		return ""
	}
	return m.renderedHTML[len(m.renderedHTML)-1]
}

// Clear forgets all recorded documents.
func (m *MockPDFRenderer) Clear() {
	m.mu.Lock()
	m.renderedHTML = nil
	m.failWith = nil
	m.mu.Unlock()
}
