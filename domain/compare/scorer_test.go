package compare

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixdiff/ports"
)

func TestEmbeddingScorerCosine(t *testing.T) {
	vectors := map[string][]float64{
		"alpha": {1, 0, 0},
		"beta":  {0, 1, 0},
		"gamma": {1, 1, 0},
	}
	embeds := 0
	embedder := ports.EmbedderFunc(func(_ context.Context, text string) ([]float64, error) {
		embeds++
		vec, ok := vectors[text]
		if !ok {
			return nil, fmt.Errorf("no vector for %q", text)
		}
		return vec, nil
	})

	scorer := NewEmbeddingScorer(embedder)

	sim, err := scorer.Score(context.Background(), "alpha", "beta")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-12)
	assert.Equal(t, 2, embeds)

	sim, err = scorer.Score(context.Background(), "alpha", "gamma")
	require.NoError(t, err)
	assert.InDelta(t, 0.7071, sim, 1e-4)
}

func TestEmbeddingScorerShortCircuit(t *testing.T) {
	embedder := ports.EmbedderFunc(func(_ context.Context, text string) ([]float64, error) {
		t.Fatalf("embedder called for identical texts (%q)", text)
		return nil, nil
	})
	scorer := NewEmbeddingScorer(embedder)

	sim, err := scorer.Score(context.Background(), "  same  ", "SAME")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim)
}

func TestEmbeddingScorerPropagatesError(t *testing.T) {
	embedder := ports.EmbedderFunc(func(_ context.Context, _ string) ([]float64, error) {
		return nil, fmt.Errorf("quota exceeded")
	})
	scorer := NewEmbeddingScorer(embedder)

	_, err := scorer.Score(context.Background(), "one", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestLexicalScorer(t *testing.T) {
	scorer := NewLexicalScorer()

	sim, err := scorer.Score(context.Background(), "abcd", "bcde")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, sim, 1e-9)

	sim, err = scorer.Score(context.Background(), "  padded  ", "padded")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim)
}
