package cmd

import "testing"

func TestFailsMinGrade(t *testing.T) {
	tests := []struct {
		grade    string
		required string
		want     bool
	}{
		{"A", "", false},
		{"F", "", false},
		{"B", "B", false},
		{"A", "B", false},
		{"C", "B", true},
		{"F", "D", true},
		{"D", "F", false},
		{"C", "Z", false}, // unknown requirement never fails the run
	}

	for _, tt := range tests {
		if got := failsMinGrade(tt.grade, tt.required); got != tt.want {
			t.Errorf("failsMinGrade(%q, %q) = %v, want %v", tt.grade, tt.required, got, tt.want)
		}
	}
}
