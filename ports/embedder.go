package ports

import "context"

// Embedder produces a fixed-length numeric vector for a text string.
// Implementations are external services; the domain scorer only ever sees
// this interface so it stays unit-testable without network access.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// EmbedderFunc adapts a plain function to the Embedder interface.
type EmbedderFunc func(ctx context.Context, text string) ([]float64, error)

func (f EmbedderFunc) Embed(ctx context.Context, text string) ([]float64, error) {
	return f(ctx, text)
}
