// Package output renders analysis results for the console and for
// machine-readable reports.
package output

import (
	"fmt"

	"github.com/dotcommander/postlint/internal/analyzer"
)

// PostReport pairs one analyzed post with its result. Source is a display
// name: a file path in batch mode, "stdin" or "post" otherwise.
type PostReport struct {
	Source string
	Text   string
	Result *analyzer.AnalysisResult
}

// Report is the full set of results for one run.
type Report struct {
	Posts []PostReport
}

// AverageScore returns the mean overall score across posts, rounded down.
// Zero posts yields zero.
func (r *Report) AverageScore() int {
	if len(r.Posts) == 0 {
		return 0
	}
	total := 0
	for _, p := range r.Posts {
		total += p.Result.OverallScore
	}
	return total / len(r.Posts)
}

// Formatter renders a Report.
type Formatter interface {
	Format(report *Report) error
}

// NewFormatter creates the formatter for the given format string.
func NewFormatter(format string, quiet, verbose bool, outputFile string) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(quiet, verbose), nil
	case "json":
		return NewJSONFormatter(quiet, true, outputFile), nil
	case "markdown":
		return NewMarkdownFormatter(quiet, verbose, outputFile), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
