package compare

// CodeDiff partitions the union of two code sets into three disjoint sets.
type CodeDiff struct {
	Common  []string // present in both periods, in Q3 order
	Removed []string // present only in Q3, in Q3 order
	Added   []string // present only in Q4, in Q4 order
}

// DiffCodes computes the membership partition between the Q3 and Q4 record
// sets. Ordering is deterministic: Q3 insertion order for Common and
// Removed, Q4 insertion order for Added.
func DiffCodes(q3, q4 *RecordSet) CodeDiff {
	var diff CodeDiff
	for _, code := range q3.Codes() {
		if q4.Contains(code) {
			diff.Common = append(diff.Common, code)
		} else {
			diff.Removed = append(diff.Removed, code)
		}
	}
	for _, code := range q4.Codes() {
		if !q3.Contains(code) {
			diff.Added = append(diff.Added, code)
		}
	}
	return diff
}

// UnionSize returns the number of distinct codes across both periods.
func (d CodeDiff) UnionSize() int {
	return len(d.Common) + len(d.Removed) + len(d.Added)
}
