package ports

import "context"

// Scorer measures similarity between two note texts on a [0,1] scale.
// The pipeline is written against this interface so the embedding-backed
// scorer and the local lexical scorer are interchangeable.
type Scorer interface {
	Score(ctx context.Context, old, new string) (float64, error)
}
