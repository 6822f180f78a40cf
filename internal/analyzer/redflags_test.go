package analyzer

import (
	"strings"
	"testing"
)

func TestScoreRedFlags(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name        string
		text        string
		wantScore   int
		wantFactors []string
	}{
		{
			name:        "clean content keeps full score with a positive detail",
			text:        "Shipped a small improvement to our build pipeline today.",
			wantScore:   100,
			wantFactors: []string{"Clean content"},
		},
		{
			name:        "all caps penalized",
			text:        strings.Repeat("A", 40),
			wantScore:   80,
			wantFactors: []string{"All caps"},
		},
		{
			name:      "short caps text not penalized",
			text:      "WOW",
			wantScore: 100,
		},
		{
			name:        "hashtag stuffing",
			text:        "new post #a #b #c #d #e #f",
			wantScore:   75,
			wantFactors: []string{"Hashtag stuffing"},
		},
		{
			name:        "mild hashtag overuse",
			text:        "new post #a #b #c #d",
			wantScore:   90,
			wantFactors: []string{"Many hashtags"},
		},
		{
			name:        "link stuffing",
			text:        "see https://a.com https://b.com https://c.com",
			wantScore:   85,
			wantFactors: []string{"Link stuffing"},
		},
		{
			name:        "repeated punctuation",
			text:        "you won't believe this!!!",
			wantScore:   90,
			wantFactors: []string{"Repeated punctuation"},
		},
		{
			name:        "financial spam pattern",
			text:        "Buy now and make $500 a day from your phone",
			wantScore:   70,
			wantFactors: []string{"Financial spam"},
		},
		{
			name:        "follow bait",
			text:        "follow for follow! growing fast",
			wantScore:   75,
			wantFactors: []string{"Engagement bait"},
		},
		{
			name:        "hostile language",
			text:        "anyone who disagrees is an idiot and a clown",
			wantScore:   85,
			wantFactors: []string{"Hostile language"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ScoreRedFlags(tt.text)
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

func TestScoreRedFlagsStacksPenalties(t *testing.T) {
	e := testEngine()

	// Caps (-20), hashtag stuffing (-25), repeated punctuation (-10).
	text := "FOLLOW THIS ACCOUNT RIGHT NOW!!! #a #b #c #d #e #f"
	got := e.ScoreRedFlags(text)
	want := 100 - 20 - 25 - 10
	if got.Score != want {
		t.Errorf("score = %d, want %d (details: %+v)", got.Score, want, got.Details)
	}
}

func TestScoreRedFlagsNeverNegative(t *testing.T) {
	e := testEngine()

	// Trip everything at once; the clamp keeps the score at 0.
	text := "BUY NOW MAKE $900 FOLLOW FOR FOLLOW IDIOT!!! " +
		"#a #b #c #d #e #f https://a.com https://b.com https://c.com"
	got := e.ScoreRedFlags(text)
	if got.Score < 0 || got.Score > 100 {
		t.Errorf("score %d out of range", got.Score)
	}
}
