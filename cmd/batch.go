package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/postlint/internal/analyzer"
	"github.com/dotcommander/postlint/internal/config"
	"github.com/dotcommander/postlint/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch GLOB...",
	Short: "Analyze draft files matched by glob patterns",
	Long: `Batch analyzes every draft file matched by the given glob patterns
(doublestar syntax, e.g. 'drafts/**/*.md').

Draft files are plain text with optional YAML frontmatter carrying
per-post context:

    ---
    recent_posts: 3
    hours_since_last_post: 2.5
    followers: 15000
    ---
    The post text goes here. What do you all think?`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	paths, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no draft files matched")
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	report := &output.Report{}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read draft %s: %w", path, err)
		}

		text, opts, err := parseDraft(string(raw), cfg)
		if err != nil {
			return fmt.Errorf("cannot parse draft %s: %w", path, err)
		}

		report.Posts = append(report.Posts, output.PostReport{
			Source: path,
			Text:   text,
			Result: engine.AnalyzePost(text, opts),
		})
	}

	formatter, err := output.NewFormatter(cfg.Format, cfg.Quiet, cfg.Verbose, cfg.Output)
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if cfg.MinGrade != "" {
		for _, post := range report.Posts {
			if failsMinGrade(post.Result.OverallGrade, cfg.MinGrade) {
				if !cfg.Quiet {
					fmt.Fprintf(os.Stderr, "%s: overall grade %s is below required %s\n",
						post.Source, post.Result.OverallGrade, cfg.MinGrade)
				}
				os.Exit(1)
			}
		}
	}

	return nil
}

// expandGlobs resolves doublestar patterns to a sorted, de-duplicated
// file list. Literal paths pass through untouched.
func expandGlobs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if matches == nil {
			// Not a pattern match; keep literal paths so missing files
			// produce a readable read error instead of silence.
			if _, statErr := os.Stat(pattern); statErr == nil {
				matches = []string{pattern}
			}
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// draftFrontmatter is the optional per-draft context block.
type draftFrontmatter struct {
	RecentPosts        *int     `yaml:"recent_posts"`
	HoursSinceLastPost *float64 `yaml:"hours_since_last_post"`
	Followers          *int     `yaml:"followers"`
}

// parseDraft splits optional YAML frontmatter from the post body and
// merges its context over the configured defaults.
func parseDraft(content string, cfg *config.Config) (string, *analyzer.AnalysisOptions, error) {
	opts := analyzer.DefaultOptions()
	opts.FollowerCount = cfg.Followers

	if !strings.HasPrefix(content, "---") {
		return strings.TrimSpace(content), &opts, nil
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return strings.TrimSpace(content), &opts, nil
	}

	var fm draftFrontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return "", nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	if fm.RecentPosts != nil {
		opts.RecentPostCount = *fm.RecentPosts
	}
	if fm.HoursSinceLastPost != nil {
		opts.HoursSinceLastPost = *fm.HoursSinceLastPost
	}
	if fm.Followers != nil {
		opts.FollowerCount = *fm.Followers
	}

	return strings.TrimSpace(parts[2]), &opts, nil
}
