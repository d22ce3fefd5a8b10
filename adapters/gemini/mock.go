package gemini

import (
	"context"
	"sync"
)

// MockEmbedder is a canned embedder for testing without network access.
// Safe for concurrent use.
type MockEmbedder struct {
	Vectors map[string][]float64 // Vector to return per text
	Default []float64            // Fallback when the text has no entry
	Error   error                // Set this to simulate failures

	mu    sync.Mutex
	calls []string
}

func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.Error != nil {
		return nil, m.Error
	}
	if vec, ok := m.Vectors[text]; ok {
		return vec, nil
	}
	return m.Default, nil
}

// Calls returns the texts embedded so far, in call order.
func (m *MockEmbedder) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
