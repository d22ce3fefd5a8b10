package compare

import "strings"

// NormalizeText trims surrounding whitespace from a note before comparison.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// ExactMatch reports whether two notes are identical after normalization,
// compared case-insensitively. Exact matches short-circuit to similarity
// 1.0 without an embedding call, so identical strings never score below 1.0
// from float noise.
func ExactMatch(a, b string) bool {
	return strings.EqualFold(NormalizeText(a), NormalizeText(b))
}
