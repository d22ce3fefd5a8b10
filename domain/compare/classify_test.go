package compare

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		want       Severity
	}{
		{"exactly 1.0 is no change", 1.0, SeverityNoChange},
		{"0.999 is still a wording change", 0.999, SeverityMinor},
		{"0.80 lower bound is minor", 0.80, SeverityMinor},
		{"0.7999 falls to moderate", 0.7999, SeverityModerate},
		{"0.55 lower bound is moderate", 0.55, SeverityModerate},
		{"0.5499 falls to severe", 0.5499, SeveritySevere},
		{"zero is severe", 0.0, SeveritySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultThresholds.Classify(StatusModified, &tt.similarity)
			if got != tt.want {
				t.Errorf("Classify(Modified, %v) = %q, want %q", tt.similarity, got, tt.want)
			}
		})
	}
}

func TestClassifyMembershipStatus(t *testing.T) {
	// Membership fully determines severity for added/removed codes,
	// regardless of any similarity value passed alongside.
	one := 1.0
	if got := DefaultThresholds.Classify(StatusRemoved, &one); got != SeverityRemoved {
		t.Errorf("removed code classified %q, want %q", got, SeverityRemoved)
	}
	if got := DefaultThresholds.Classify(StatusNew, nil); got != SeverityNew {
		t.Errorf("new code classified %q, want %q", got, SeverityNew)
	}
}

func TestClassifyUndefinedSimilarity(t *testing.T) {
	// A common code with one empty note has no defined similarity and is
	// classified conservatively.
	if got := DefaultThresholds.Classify(StatusModified, nil); got != SeveritySevere {
		t.Errorf("undefined similarity classified %q, want %q", got, SeveritySevere)
	}
}

func TestLexicalThresholds(t *testing.T) {
	sim := 0.5
	if got := LexicalThresholds.Classify(StatusModified, &sim); got != SeverityModerate {
		t.Errorf("lexical 0.5 classified %q, want %q", got, SeverityModerate)
	}
	sim = 0.39
	if got := LexicalThresholds.Classify(StatusModified, &sim); got != SeveritySevere {
		t.Errorf("lexical 0.39 classified %q, want %q", got, SeveritySevere)
	}
}
