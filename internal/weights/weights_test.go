package weights

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultTable(t *testing.T) {
	table := Default()

	if table.Engagement.Reply != 13.5 {
		t.Errorf("reply weight = %v, want 13.5", table.Engagement.Reply)
	}
	if table.Negative.Report != -369.0 {
		t.Errorf("report weight = %v, want -369", table.Negative.Report)
	}
	if table.Diversity.Decay != 0.5 || table.Diversity.Floor != 0.1 {
		t.Errorf("diversity params = %+v", table.Diversity)
	}
	if table.Content.OptimalMaxLength != 280 {
		t.Errorf("optimalMaxLength = %d, want 280", table.Content.OptimalMaxLength)
	}
	if len(table.Patterns.MutedTerms) == 0 || len(table.Patterns.SpamPatterns) == 0 {
		t.Error("default pattern lists must not be empty")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	want := Default()
	if table.Engagement != want.Engagement || table.Content != want.Content {
		t.Errorf("empty path should yield defaults, got %+v", table)
	}
	if len(table.Patterns.MutedTerms) != len(want.Patterns.MutedTerms) {
		t.Errorf("mutedTerms = %v", table.Patterns.MutedTerms)
	}
}

func TestLoadAppliesPartialOverride(t *testing.T) {
	path := writeWeightsFile(t, `
engagement:
  reply: 20.0
content:
  maxLength: 400
`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if table.Engagement.Reply != 20.0 {
		t.Errorf("reply = %v, want overridden 20.0", table.Engagement.Reply)
	}
	if table.Content.MaxLength != 400 {
		t.Errorf("maxLength = %d, want overridden 400", table.Content.MaxLength)
	}
	// Untouched fields keep their defaults.
	if table.Engagement.Favorite != 0.5 {
		t.Errorf("favorite = %v, want default 0.5", table.Engagement.Favorite)
	}
	if table.Diversity.Decay != 0.5 {
		t.Errorf("decay = %v, want default 0.5", table.Diversity.Decay)
	}
}

func TestLoadOverridesPatternLists(t *testing.T) {
	path := writeWeightsFile(t, `
patterns:
  mutedTerms: ["crypto pump"]
`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(table.Patterns.MutedTerms) != 1 || table.Patterns.MutedTerms[0] != "crypto pump" {
		t.Errorf("mutedTerms = %v, want replaced list", table.Patterns.MutedTerms)
	}
	// Spam patterns were not overridden.
	if len(table.Patterns.SpamPatterns) == 0 {
		t.Error("spamPatterns should keep defaults")
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"positive negative weight", "negative:\n  report: 10\n"},
		{"decay out of range", "diversity:\n  decay: 1.5\n"},
		{"wrong type", "content:\n  maxLength: \"long\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWeightsFile(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), "invalid weights file") {
				t.Errorf("error = %v, want schema validation failure", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "cannot read weights file") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeWeightsFile(t, "engagement: [not: a: map\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
