package compare

// Thresholds are the lower bounds of the severity bands. A score below
// Severe is a severe change, [Severe, Minor) is moderate, [Minor, 1.0) is a
// minor wording change, and only exactly 1.0 counts as no change.
type Thresholds struct {
	Severe float64
	Minor  float64
}

// DefaultThresholds are calibrated against the embedding model's score
// distribution.
var DefaultThresholds = Thresholds{Severe: 0.55, Minor: 0.80}

// LexicalThresholds suit the sequence-ratio scorer, which tends to score
// lower than the embedding model on rewordings.
var LexicalThresholds = Thresholds{Severe: 0.40, Minor: 0.75}

// Classify maps a similarity score and membership status to a severity
// bucket. similarity is nil for added/removed codes and for common codes
// where exactly one note is empty, which we treat as the most conservative
// bucket rather than defaulting to no change.
func (t Thresholds) Classify(status Status, similarity *float64) Severity {
	switch status {
	case StatusRemoved:
		return SeverityRemoved
	case StatusNew:
		return SeverityNew
	}

	if similarity == nil {
		// Undefined comparison on a common code: one side is empty.
		return SeveritySevere
	}

	sim := *similarity
	switch {
	case sim >= 1.0:
		return SeverityNoChange
	case sim >= t.Minor:
		return SeverityMinor
	case sim >= t.Severe:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
