package compare

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Report is the assembled comparison output for one category: an ordered
// row per code plus the aggregate summary. It is built fully in memory
// before any workbook write happens.
type Report struct {
	Column  string
	Rows    []ResultRow
	Summary Summary
}

// Summary holds the aggregate counts for a category report. It is derived
// from the rows and always recomputable from them.
type Summary struct {
	TotalInQ3   int
	NoChange    int
	Modified    int
	Severe      int
	Moderate    int
	Minor       int
	NewInQ4     int
	RemovedInQ4 int

	// Descriptive stats over the scored rows; nil when nothing was scored.
	MeanSimilarity *float64
	MinSimilarity  *float64
}

// BuildSummary counts rows per status and severity bucket. q3Size is the
// size of the Q3 code set, which is what "Total in Q3" reports.
func BuildSummary(rows []ResultRow, q3Size int) Summary {
	s := Summary{TotalInQ3: q3Size}
	var sims []float64

	for _, row := range rows {
		switch row.Status {
		case StatusNoChange:
			s.NoChange++
		case StatusModified:
			s.Modified++
		case StatusNew:
			s.NewInQ4++
		case StatusRemoved:
			s.RemovedInQ4++
		}

		switch row.Severity {
		case SeveritySevere:
			s.Severe++
		case SeverityModerate:
			s.Moderate++
		case SeverityMinor:
			s.Minor++
		}

		if row.Similarity != nil {
			sims = append(sims, *row.Similarity)
		}
	}

	if len(sims) > 0 {
		if mean, err := stats.Mean(sims); err == nil {
			mean = roundSimilarity(mean)
			s.MeanSimilarity = &mean
		}
		if min, err := stats.Min(sims); err == nil {
			s.MinSimilarity = &min
		}
	}
	return s
}

// SummaryEntry is one labeled line of the summary block.
type SummaryEntry struct {
	Label string
	Value interface{}
}

// Entries returns the summary lines in the order they appear on the sheet.
func (s Summary) Entries() []SummaryEntry {
	entries := []SummaryEntry{
		{"Total in Q3", s.TotalInQ3},
		{"No Change", s.NoChange},
		{"Modified", s.Modified},
		{"Severe Change", s.Severe},
		{"Moderate Change", s.Moderate},
		{"Minor Change", s.Minor},
		{"New in Q4", s.NewInQ4},
		{"Removed in Q4", s.RemovedInQ4},
	}
	if s.MeanSimilarity != nil {
		entries = append(entries, SummaryEntry{"Mean Similarity", *s.MeanSimilarity})
	}
	if s.MinSimilarity != nil {
		entries = append(entries, SummaryEntry{"Min Similarity", *s.MinSimilarity})
	}
	return entries
}

// Check validates internal consistency: every code appears exactly once and
// the bucket counts sum to the union size.
func (r *Report) Check() error {
	seen := make(map[string]bool, len(r.Rows))
	for _, row := range r.Rows {
		if seen[row.Code] {
			return fmt.Errorf("code %q appears more than once in report", row.Code)
		}
		seen[row.Code] = true
	}
	s := r.Summary
	if s.NoChange+s.Modified+s.NewInQ4+s.RemovedInQ4 != len(r.Rows) {
		return fmt.Errorf("summary counts do not sum to %d rows", len(r.Rows))
	}
	return nil
}
