package compare

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Cosine computes the cosine similarity between two embedding vectors:
// dot(v1,v2) / (|v1| * |v2|).
func Cosine(v1, v2 []float64) (float64, error) {
	if len(v1) == 0 || len(v2) == 0 {
		return 0, fmt.Errorf("empty embedding vector")
	}
	if len(v1) != len(v2) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(v1), len(v2))
	}
	n1 := floats.Norm(v1, 2)
	n2 := floats.Norm(v2, 2)
	if n1 == 0 || n2 == 0 {
		return 0, fmt.Errorf("zero-magnitude embedding vector")
	}
	return floats.Dot(v1, v2) / (n1 * n2), nil
}
