package analyzer

import (
	"strings"
	"testing"
)

func TestScoreAuthorDiversity(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name        string
		recentPosts int
		hoursSince  float64
		wantScore   int
		wantFactors []string
	}{
		{
			name:        "no recent posts with fresh return",
			recentPosts: 0,
			hoursSince:  24,
			wantScore:   100, // 100 + 15 clamped
			wantFactors: []string{"First post", "Fresh return"},
		},
		{
			// multiplier = 0.9*0.5^3 + 0.1 = 0.2125; penalty = round(0.7875*50) = 39
			name:        "three recent posts reproduce the decay arithmetic",
			recentPosts: 3,
			hoursSince:  24,
			wantScore:   76, // 100 - 39 + 15
			wantFactors: []string{"Diversity decay", "Fresh return"},
		},
		{
			name:        "good spacing bonus scales with hours",
			recentPosts: 1,
			hoursSince:  8,
			wantScore:   81, // 100 - 23 + min(round(8/2),10)=4
			wantFactors: []string{"Diversity decay", "Good spacing"},
		},
		{
			name:        "spacing bonus capped at 10",
			recentPosts: 1,
			hoursSince:  23,
			wantScore:   87, // 100 - 23 + 10
			wantFactors: []string{"Good spacing"},
		},
		{
			// multiplier = 0.9*0.5^12 + 0.1 ≈ 0.10022; penalty = round(0.89978*50) = 45
			name:        "over-posting with rapid posting penalty",
			recentPosts: 12,
			hoursSince:  0.5,
			wantScore:   45, // 100 - 45 - 10
			wantFactors: []string{"Diversity decay", "Rapid posting", "Recommendation"},
		},
		{
			name:        "dead zone between 1 and 4 hours has no spacing detail",
			recentPosts: 2,
			hoursSince:  2,
			wantScore:   66, // 100 - 34, no bonus or penalty
			wantFactors: []string{"Diversity decay"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ScoreAuthorDiversity(tt.recentPosts, tt.hoursSince)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (details: %+v)", got.Score, tt.wantScore, got.Details)
			}
			for _, factor := range tt.wantFactors {
				if !hasFactor(got.Details, factor) {
					t.Errorf("missing detail factor %q in %+v", factor, got.Details)
				}
			}
		})
	}
}

func TestScoreAuthorDiversityPenaltyRounding(t *testing.T) {
	e := testEngine()

	tests := []struct {
		recentPosts int
		wantWeight  int
	}{
		// 0.9 * (1 - 0.5^1) * 50 = 22.5, which rounds away from zero.
		{1, -23},
		// 0.9 * (1 - 0.5^3) * 50 = 39.375
		{3, -39},
		// 0.9 * (1 - 0.5^12) * 50 = 44.989
		{12, -45},
	}

	for _, tt := range tests {
		got := e.ScoreAuthorDiversity(tt.recentPosts, 24)
		decay := findFactor(got.Details, "Diversity decay")
		if decay == nil {
			t.Fatalf("recentPosts=%d: no decay detail in %+v", tt.recentPosts, got.Details)
		}
		if decay.Weight != tt.wantWeight {
			t.Errorf("recentPosts=%d: decay weight = %d, want %d",
				tt.recentPosts, decay.Weight, tt.wantWeight)
		}
	}
}

func TestScoreAuthorDiversitySeverityLabels(t *testing.T) {
	e := testEngine()

	tests := []struct {
		recentPosts  int
		wantSeverity string
	}{
		{2, "moderate"},
		{3, "moderate"},
		{4, "frequent"},
		{6, "frequent"},
		{7, "over-posting"},
		{12, "over-posting"},
	}

	for _, tt := range tests {
		got := e.ScoreAuthorDiversity(tt.recentPosts, 24)
		decay := findFactor(got.Details, "Diversity decay")
		if decay == nil {
			t.Fatalf("recentPosts=%d: no decay detail", tt.recentPosts)
		}
		if !strings.Contains(decay.Description, tt.wantSeverity) {
			t.Errorf("recentPosts=%d: description %q missing severity %q",
				tt.recentPosts, decay.Description, tt.wantSeverity)
		}
	}
}

func TestScoreAuthorDiversityNoPenaltyAtZero(t *testing.T) {
	e := testEngine()
	got := e.ScoreAuthorDiversity(0, 24)
	for _, d := range got.Details {
		if d.Weight < 0 {
			t.Errorf("unexpected penalty detail at zero recent posts: %+v", d)
		}
	}
	if got.Score < 100 {
		t.Errorf("score = %d, want full score with no recent posts", got.Score)
	}
}

func findFactor(details []ScoreDetail, factor string) *ScoreDetail {
	for i := range details {
		if details[i].Factor == factor {
			return &details[i]
		}
	}
	return nil
}

