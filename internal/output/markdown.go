package output

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the report as a Markdown document.
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString("# Postlint Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Posts analyzed:** %d\n\n", len(report.Posts)))
	builder.WriteString(fmt.Sprintf("**Average score:** %d/100\n\n", report.AverageScore()))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	for _, post := range report.Posts {
		f.writePost(&builder, post)
	}

	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0o644); err != nil {
			return fmt.Errorf("error writing markdown report: %w", err)
		}
		if !f.quiet {
			fmt.Printf("Markdown report written to %s\n", f.outputFile)
		}
		return nil
	}

	fmt.Print(content)
	return nil
}

func (f *MarkdownFormatter) writePost(builder *strings.Builder, post PostReport) {
	result := post.Result

	source := post.Source
	if source == "" {
		source = "post"
	}
	builder.WriteString(fmt.Sprintf("## %s\n\n", source))
	builder.WriteString(fmt.Sprintf("**Overall:** %d/100 (%s)\n\n", result.OverallScore, result.OverallGrade))

	builder.WriteString("| Dimension | Score | Grade |\n")
	builder.WriteString("|-----------|-------|-------|\n")
	for _, dim := range result.Dimensions() {
		builder.WriteString(fmt.Sprintf("| %s | %d | %s |\n", dim.Label, dim.Score, dim.Grade))
	}
	builder.WriteString("\n")

	if f.verbose {
		for _, dim := range result.Dimensions() {
			builder.WriteString(fmt.Sprintf("### %s\n\n", dim.Label))
			for _, d := range dim.Details {
				if d.Weight != 0 {
					builder.WriteString(fmt.Sprintf("- **%s** (%+d): %s\n", d.Factor, d.Weight, d.Description))
				} else {
					builder.WriteString(fmt.Sprintf("- **%s**: %s\n", d.Factor, d.Description))
				}
			}
			builder.WriteString("\n")
		}
	}

	if len(result.Suggestions) > 0 {
		builder.WriteString("### Suggestions\n\n")
		for _, s := range result.Suggestions {
			builder.WriteString(fmt.Sprintf("- **[%s]** %s\n", s.Priority, s.Text))
		}
		builder.WriteString("\n")
	}
}
