package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "No PA required", "No PA required", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "something", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"classic overlap", "abcd", "bcde", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioSymmetricBounds(t *testing.T) {
	pairs := [][2]string{
		{"No PA 24 visits", "No PA 12 visits"},
		{"prior auth required", "authorization needed beforehand"},
		{"short", "a much longer sentence about the same topic"},
	}
	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9, "ratio must be symmetric for %q / %q", p[0], p[1])
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}
