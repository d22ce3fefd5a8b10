package app

// Category is one comparison domain in the workbook: a pair of Q3/Q4
// snapshot sheets plus the header aliases for its code and note columns.
type Category struct {
	Name        string
	Q3Sheet     string
	Q4Sheet     string
	OutputSheet string
	CodeAliases []string
	NoteAliases []string
}

// DefaultCategories describes the two comparison domains of the
// authorization business matrix workbook.
func DefaultCategories() []Category {
	return []Category{
		{
			Name:        "WA",
			Q3Sheet:     "WA Q3",
			Q4Sheet:     "WA Q4",
			OutputSheet: "WA Q3 vs WA Q4",
			CodeAliases: []string{"Code"},
			NoteAliases: []string{"Code Notes"},
		},
		{
			Name:        "Medicaid",
			Q3Sheet:     "Medicaid Q3",
			Q4Sheet:     "Medicaid Q4",
			OutputSheet: "Medicaid Q3 vs Medicaid Q4",
			CodeAliases: []string{"Code"},
			NoteAliases: []string{"MHI Code Notes"},
		},
	}
}
