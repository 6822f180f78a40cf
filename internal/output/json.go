package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/postlint/internal/analyzer"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	quiet      bool
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(quiet, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the top-level JSON document.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Posts   []JSONResult `json:"posts"`
}

// JSONHeader identifies the tool that produced the report.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary aggregates the run.
type JSONSummary struct {
	TotalPosts   int `json:"totalPosts"`
	AverageScore int `json:"averageScore"`
}

// JSONResult is one post's analysis.
type JSONResult struct {
	Source string                   `json:"source"`
	Result *analyzer.AnalysisResult `json:"result"`
}

// Format marshals the report and writes it to the output file or stdout.
func (f *JSONFormatter) Format(report *Report) error {
	doc := JSONReport{
		Header: JSONHeader{
			Tool:      "postlint",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalPosts:   len(report.Posts),
			AverageScore: report.AverageScore(),
		},
		Posts: make([]JSONResult, len(report.Posts)),
	}

	for i, post := range report.Posts {
		doc.Posts[i] = JSONResult{
			Source: post.Source,
			Result: post.Result,
		}
	}

	var raw []byte
	var err error
	if f.indent {
		raw, err = json.MarshalIndent(doc, "", "  ")
	} else {
		raw, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, raw, 0o644); err != nil {
			return fmt.Errorf("error writing JSON report: %w", err)
		}
		if !f.quiet {
			fmt.Printf("JSON report written to %s\n", f.outputFile)
		}
		return nil
	}

	fmt.Println(string(raw))
	return nil
}
