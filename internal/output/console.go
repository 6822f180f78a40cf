package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/postlint/internal/analyzer"
)

// ConsoleFormatter renders a styled report to stdout.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format renders every post report followed by a run summary.
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		return nil
	}

	for i, post := range report.Posts {
		if i > 0 {
			fmt.Println()
		}
		f.printPost(post)
	}

	if len(report.Posts) > 1 {
		fmt.Printf("\n%d posts analyzed, average score %d\n", len(report.Posts), report.AverageScore())
	}

	return nil
}

func (f *ConsoleFormatter) printPost(post PostReport) {
	result := post.Result

	header := post.Source
	if header == "" {
		header = "post"
	}
	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s  %s %d/100\n\n",
		headerStyle.Render(header),
		f.gradeBadge(result.OverallGrade, result.OverallScore),
		result.OverallScore)

	for _, dim := range result.Dimensions() {
		f.printDimension(dim)
	}

	if len(result.Suggestions) > 0 {
		fmt.Println()
		for _, s := range result.Suggestions {
			f.printSuggestion(s)
		}
	}
}

func (f *ConsoleFormatter) printDimension(dim analyzer.ScoreResult) {
	fmt.Printf("  %-16s %3d  %s  %s\n",
		dim.Label,
		dim.Score,
		f.gradeBadge(dim.Grade, dim.Score),
		f.scoreBar(dim))

	if !f.verbose {
		return
	}
	for _, d := range dim.Details {
		sign := " "
		if d.Weight > 0 {
			sign = "+"
		}
		if d.Weight != 0 {
			fmt.Printf("      %s%d %s: %s\n", sign, d.Weight, d.Factor, d.Description)
		} else {
			fmt.Printf("      %s: %s\n", d.Factor, d.Description)
		}
	}
}

func (f *ConsoleFormatter) printSuggestion(s analyzer.Suggestion) {
	prefix := "  💡 "
	if s.Type == analyzer.SuggestionWarning {
		prefix = "  ⚠ "
	}

	var style lipgloss.Style
	if f.colorize {
		switch s.Priority {
		case analyzer.PriorityHigh:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
		case analyzer.PriorityMedium:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
		default:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
		}
	}

	fmt.Printf("%s%s %s\n", prefix, style.Render("["+s.Priority+"]"), s.Text)
}

// gradeBadge renders the letter grade in the dimension's display color.
func (f *ConsoleFormatter) gradeBadge(grade string, score int) string {
	if !f.colorize {
		return grade
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(analyzer.ColorFromScore(score)))
	return style.Render(grade)
}

// scoreBar renders a 10-segment bar filled proportionally to the score.
func (f *ConsoleFormatter) scoreBar(dim analyzer.ScoreResult) string {
	filled := dim.Score / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	if !f.colorize {
		return bar
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(dim.Color)).Render(bar)
}
