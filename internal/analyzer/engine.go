package analyzer

import (
	"math"
	"regexp"
	"sync"

	"github.com/dotcommander/postlint/internal/weights"
)

// Fixed dimension weights applied by the aggregator. They sum to 1.0.
const (
	weightEngagement      = 0.25
	weightRedFlags        = 0.20
	weightDwellTime       = 0.15
	weightAuthorDiversity = 0.15
	weightFilterRisk      = 0.10
	weightReach           = 0.15
)

// Engine runs the six dimension scorers against a weight table. The table
// is read-only after construction, so a single Engine may be shared across
// goroutines.
type Engine struct {
	weights      weights.Table
	spamPatterns []*regexp.Regexp
}

// NewEngine creates an Engine for the given weight table. Spam patterns
// from the table are compiled once here; sources that fail to compile are
// skipped rather than failing analysis.
func NewEngine(table weights.Table) *Engine {
	e := &Engine{weights: table}
	for _, src := range table.Patterns.SpamPatterns {
		re, err := regexp.Compile(src)
		if err != nil {
			continue
		}
		e.spamPatterns = append(e.spamPatterns, re)
	}
	return e
}

// AnalyzePost scores text across all six dimensions, aggregates the
// weighted overall score, and generates suggestions. A nil opts uses the
// documented defaults. It never fails: any string, including the empty
// string, produces a fully populated result.
func (e *Engine) AnalyzePost(text string, opts *AnalysisOptions) *AnalysisResult {
	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}

	result := &AnalysisResult{
		Engagement:      e.ScoreEngagement(text),
		RedFlags:        e.ScoreRedFlags(text),
		DwellTime:       e.ScoreDwellTime(text),
		AuthorDiversity: e.ScoreAuthorDiversity(options.RecentPostCount, options.HoursSinceLastPost),
		FilterRisk:      e.ScoreFilterRisk(text),
		Reach:           e.ScoreReach(text, options.FollowerCount),
	}

	overall := float64(result.Engagement.Score)*weightEngagement +
		float64(result.RedFlags.Score)*weightRedFlags +
		float64(result.DwellTime.Score)*weightDwellTime +
		float64(result.AuthorDiversity.Score)*weightAuthorDiversity +
		float64(result.FilterRisk.Score)*weightFilterRisk +
		float64(result.Reach.Score)*weightReach

	result.OverallScore = int(math.Round(overall))
	result.OverallGrade = GradeFromScore(result.OverallScore)
	result.Suggestions = e.GenerateSuggestions(text, result)

	return result
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// AnalyzePost analyzes text with a shared Engine built from the default
// weight table.
func AnalyzePost(text string, opts *AnalysisOptions) *AnalysisResult {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine(weights.Default())
	})
	return defaultEngine.AnalyzePost(text, opts)
}
