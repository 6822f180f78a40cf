package analyzer

import "testing"

func TestScoreFilterRisk(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name        string
		text        string
		wantScore   int
		wantFactors []string
	}{
		{
			name:        "clean content",
			text:        "A quiet observation about typography on the web.",
			wantScore:   100,
			wantFactors: []string{"No filter triggers"},
		},
		{
			name:        "single muted term",
			text:        "Big giveaway starting tomorrow",
			wantScore:   90,
			wantFactors: []string{"Muted terms"},
		},
		{
			name:        "muted term penalty capped at 30",
			text:        "giveaway of free money, dm me, click here, airdrop inside",
			wantScore:   70,
			wantFactors: []string{"Muted terms"},
		},
		{
			name:        "link shortener",
			text:        "full story at bit.ly/abc123",
			wantScore:   85,
			wantFactors: []string{"Link shortener"},
		},
		{
			name:        "duplicate content indicator",
			text:        "posting this again because the algorithm ate it",
			wantScore:   90,
			wantFactors: []string{"Duplicate content"},
		},
		{
			name:        "two safety trigger categories",
			text:        "they should kill this feature, honestly nsfw levels of bad",
			wantScore:   60,
			wantFactors: []string{"Safety triggers"},
		},
		{
			name:        "promotional overload",
			text:        "Huge discount! Use code SAVE20, 50% off, sale ends tonight",
			wantScore:   85,
			wantFactors: []string{"Promotional language"},
		},
		{
			name:        "cross-platform promotion",
			text:        "follow me on instagram and tiktok too",
			wantScore:   90,
			wantFactors: []string{"Cross-platform promotion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ScoreFilterRisk(tt.text)
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

func TestScoreFilterRiskHashtagFlood(t *testing.T) {
	e := testEngine()
	got := e.ScoreFilterRisk("#a #b #c #d #e #f #g #h #i #j #k")
	if !hasFactor(got.Details, "Hashtag flood") {
		t.Fatalf("expected hashtag flood detail, got %+v", got.Details)
	}
	if got.Score != 75 {
		t.Errorf("score = %d, want 75", got.Score)
	}
}
