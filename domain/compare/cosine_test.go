package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	sim, err := Cosine([]float64{1, 0}, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-12)

	sim, err = Cosine([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-12)

	// Scale invariance.
	sim, err = Cosine([]float64{2, 2}, []float64{5, 5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-12)
}

func TestCosineErrors(t *testing.T) {
	_, err := Cosine(nil, []float64{1})
	assert.Error(t, err)

	_, err = Cosine([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = Cosine([]float64{0, 0}, []float64{1, 1})
	assert.Error(t, err)
}
