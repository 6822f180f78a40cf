// Package analyzer scores a short social-media post against a heuristic
// model of a feed-ranking algorithm. Six independent dimension scorers feed
// a weighted aggregator; a suggestion generator turns the same inputs into
// prioritized, actionable advice. The whole package is pure: no I/O, no
// clocks, no shared mutable state, so AnalyzePost is safe to call from any
// number of goroutines.
package analyzer

// Impact classifies a ScoreDetail's effect on its dimension score.
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// Suggestion type constants.
const (
	SuggestionImprovement = "improvement"
	SuggestionWarning     = "warning"
	SuggestionTip         = "tip"
)

// Suggestion priority constants.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ScoreDetail is one explanatory line in a dimension's breakdown. Weight is
// the signed contribution actually applied to the score, kept so results
// are auditable in tests and in the report output.
type ScoreDetail struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact"` // positive, negative, neutral
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// ScoreResult is the outcome of one dimension scorer. Details are in
// evaluation order and are never re-sorted.
type ScoreResult struct {
	Score       int           `json:"score"` // always clamped to [0,100]
	Grade       string        `json:"grade"` // A, B, C, D, F
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Color       string        `json:"color"`
	Details     []ScoreDetail `json:"details"`
}

// AnalysisOptions carries posting-history context computed by the caller.
// Pass nil to AnalyzePost to use the defaults.
type AnalysisOptions struct {
	RecentPostCount    int     `json:"recentPostCount"`    // author's posts in the trailing 24h
	HoursSinceLastPost float64 `json:"hoursSinceLastPost"` // hours since the author last posted
	FollowerCount      int     `json:"followerCount"`
}

// DefaultOptions returns the documented option defaults.
func DefaultOptions() AnalysisOptions {
	return AnalysisOptions{
		RecentPostCount:    0,
		HoursSinceLastPost: 24,
		FollowerCount:      1000,
	}
}

// Suggestion is one actionable tip emitted by the suggestion generator.
type Suggestion struct {
	Type     string `json:"type"` // improvement, warning, tip
	Category string `json:"category"`
	Text     string `json:"text"`
	Priority string `json:"priority"` // high, medium, low
}

// AnalysisResult is the full output of AnalyzePost. Suggestions is always
// non-empty and is stably sorted by priority.
type AnalysisResult struct {
	OverallScore    int          `json:"overallScore"`
	OverallGrade    string       `json:"overallGrade"`
	Engagement      ScoreResult  `json:"engagement"`
	RedFlags        ScoreResult  `json:"redFlags"`
	DwellTime       ScoreResult  `json:"dwellTime"`
	AuthorDiversity ScoreResult  `json:"authorDiversity"`
	FilterRisk      ScoreResult  `json:"filterRisk"`
	Reach           ScoreResult  `json:"reach"`
	Suggestions     []Suggestion `json:"suggestions"`
}

// Dimensions returns the six dimension results in aggregation order.
func (r *AnalysisResult) Dimensions() []ScoreResult {
	return []ScoreResult{
		r.Engagement,
		r.RedFlags,
		r.DwellTime,
		r.AuthorDiversity,
		r.FilterRisk,
		r.Reach,
	}
}
