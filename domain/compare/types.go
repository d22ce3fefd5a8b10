package compare

// Status describes how a code moved between the two periods.
type Status string

const (
	StatusNoChange Status = "No Change"
	StatusModified Status = "Modified"
	StatusNew      Status = "New in Q4"
	StatusRemoved  Status = "Removed in Q4"
)

// Severity is the discrete classification bucket assigned to a change.
// It drives both the summary counts and the output color coding.
type Severity string

const (
	SeverityNoChange Severity = "No Change"
	SeverityMinor    Severity = "Minor Wording Change"
	SeverityModerate Severity = "Moderate Change"
	SeveritySevere   Severity = "Severe Change"
	SeverityNew      Severity = "New in Q4"
	SeverityRemoved  Severity = "Removed in Q4"
)

// ResultRow is one line of a category report: a single code from the union
// of the Q3 and Q4 code sets.
type ResultRow struct {
	Code       string
	Status     Status
	Column     string
	Q3Value    string
	Q4Value    string
	Similarity *float64 // nil when undefined (added, removed, or one side empty)
	Severity   Severity
}

// RecordSet is an ordered code -> note mapping for one (category, period)
// pair. Insertion order is preserved so report output is reproducible.
type RecordSet struct {
	codes []string
	notes map[string]string
	dupes []string
}

// NewRecordSet creates an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{notes: make(map[string]string)}
}

// Add appends a record. On a duplicate code the first occurrence wins and
// Add reports false; the duplicate is remembered for anomaly reporting.
func (rs *RecordSet) Add(code, note string) bool {
	if _, exists := rs.notes[code]; exists {
		rs.dupes = append(rs.dupes, code)
		return false
	}
	rs.codes = append(rs.codes, code)
	rs.notes[code] = note
	return true
}

// Codes returns the codes in insertion order.
func (rs *RecordSet) Codes() []string {
	return rs.codes
}

// Note returns the note for a code.
func (rs *RecordSet) Note(code string) (string, bool) {
	note, ok := rs.notes[code]
	return note, ok
}

// Contains reports whether the set holds the code.
func (rs *RecordSet) Contains(code string) bool {
	_, ok := rs.notes[code]
	return ok
}

// Len returns the number of distinct codes.
func (rs *RecordSet) Len() int {
	return len(rs.codes)
}

// Duplicates returns codes that were added more than once, in the order the
// duplicates were seen.
func (rs *RecordSet) Duplicates() []string {
	return rs.dupes
}
