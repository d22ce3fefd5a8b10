package compare

// Ratio computes the Ratcliff/Obershelp similarity of two strings:
// 2*M / T, where M is the total length of matching blocks found by
// recursively anchoring on the longest common substring, and T is the
// combined length of both strings. The result is in [0,1]; two empty
// strings are considered identical.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchTotal(ra, rb)) / float64(total)
}

// matchTotal returns the total number of matching runes between a and b.
func matchTotal(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchTotal(a[:ai], b[:bi]) +
		matchTotal(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common substring of a and b,
// returning its start offsets and length. Ties resolve to the earliest
// block in a, then in b, so the ratio is deterministic.
func longestCommonBlock(a, b []rune) (bestA, bestB, bestSize int) {
	// lengths[j] holds the common-suffix length ending at a[i-1], b[j-1]
	// for the current i; one row of the classic DP table at a time.
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > bestSize {
					bestSize = lengths[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return bestA, bestB, bestSize
}
