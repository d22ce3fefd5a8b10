package compare

import (
	"context"

	"matrixdiff/internal/errors"
	"matrixdiff/ports"
)

// EmbeddingScorer scores note similarity as the cosine of the two texts'
// embedding vectors. The embedder is injected so the scorer itself needs no
// network access in tests.
type EmbeddingScorer struct {
	embedder ports.Embedder
}

// NewEmbeddingScorer creates a scorer backed by the given embedder.
func NewEmbeddingScorer(embedder ports.Embedder) *EmbeddingScorer {
	return &EmbeddingScorer{embedder: embedder}
}

// Score embeds both texts and returns their cosine similarity. Identical
// texts (after normalization) short-circuit to 1.0 without calling the
// embedding service.
func (s *EmbeddingScorer) Score(ctx context.Context, old, new string) (float64, error) {
	if ExactMatch(old, new) {
		return 1.0, nil
	}

	oldVec, err := s.embedder.Embed(ctx, NormalizeText(old))
	if err != nil {
		return 0, errors.Wrap(err, "embedding old text")
	}
	newVec, err := s.embedder.Embed(ctx, NormalizeText(new))
	if err != nil {
		return 0, errors.Wrap(err, "embedding new text")
	}

	sim, err := Cosine(oldVec, newVec)
	if err != nil {
		return 0, errors.Wrap(err, "cosine similarity")
	}
	return sim, nil
}

// LexicalScorer scores similarity without any external service, using a
// Ratcliff/Obershelp sequence ratio over the raw characters. Useful when no
// embedding credential is available.
type LexicalScorer struct{}

// NewLexicalScorer creates a local-only scorer.
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

// Score returns the sequence ratio of the normalized texts.
func (s *LexicalScorer) Score(_ context.Context, old, new string) (float64, error) {
	return Ratio(NormalizeText(old), NormalizeText(new)), nil
}
