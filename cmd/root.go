package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/postlint/internal/analyzer"
	"github.com/dotcommander/postlint/internal/config"
	"github.com/dotcommander/postlint/internal/history"
	"github.com/dotcommander/postlint/internal/output"
	"github.com/dotcommander/postlint/internal/store"
	"github.com/dotcommander/postlint/internal/weights"
)

var (
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	minGrade     string
	weightsFile  string

	recentPosts  int
	hoursSince   float64
	followers    int
	historyFile  string
)

var rootCmd = &cobra.Command{
	Use:   "postlint [text]",
	Short: "Postlint - score a social post against a heuristic ranking model",
	Long: `Postlint scores a short social-media post across six ranking dimensions
(engagement, red flags, dwell time, author diversity, filter risk, reach),
grades each one, and suggests concrete improvements.

Pass the post text as an argument or pipe it on stdin. The model is a
heuristic approximation built from publicly documented ranking weights; it
does not call any real ranking system.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the per-factor score breakdown")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports")
	rootCmd.PersistentFlags().StringVar(&minGrade, "min-grade", "", "Exit non-zero when the overall grade is below this (A|B|C|D|F)")
	rootCmd.PersistentFlags().StringVarP(&weightsFile, "weights", "w", "", "Weight table override file")

	rootCmd.Flags().IntVar(&recentPosts, "recent-posts", 0, "Author's posts in the trailing 24h")
	rootCmd.Flags().Float64Var(&hoursSince, "hours-since", 24, "Hours since the author's last post")
	rootCmd.Flags().IntVar(&followers, "followers", 1000, "Author's follower count")
	rootCmd.Flags().StringVar(&historyFile, "history", "", "JSON file of recent post timestamps (RFC3339)")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("minGrade", rootCmd.PersistentFlags().Lookup("min-grade"))
	viper.BindPFlag("weights", rootCmd.PersistentFlags().Lookup("weights"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	text, err := readPostText(args)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}

	result := engine.AnalyzePost(text, opts)

	report := &output.Report{
		Posts: []output.PostReport{{Source: "post", Text: text, Result: result}},
	}

	formatter, err := output.NewFormatter(cfg.Format, cfg.Quiet, cfg.Verbose, cfg.Output)
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if failsMinGrade(result.OverallGrade, cfg.MinGrade) {
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "overall grade %s is below required %s\n", result.OverallGrade, cfg.MinGrade)
		}
		os.Exit(1)
	}

	return nil
}

// readPostText joins the args, or reads stdin when no args were given.
func readPostText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return strings.TrimRight(string(raw), "\n"), nil
	}

	return "", fmt.Errorf("no post text given; pass it as an argument or on stdin")
}

// buildEngine loads the weight table (with any overrides) and constructs
// the scoring engine.
func buildEngine(cfg *config.Config) (*analyzer.Engine, error) {
	table, err := weights.Load(cfg.Weights)
	if err != nil {
		return nil, err
	}
	return analyzer.NewEngine(table), nil
}

// buildOptions assembles analysis options from (lowest to highest
// precedence) defaults, stored context, a history file, and explicit
// flags.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (*analyzer.AnalysisOptions, error) {
	opts := analyzer.DefaultOptions()
	opts.FollowerCount = cfg.Followers

	if stored, ok, err := loadStoredFollowers(cfg); err == nil && ok {
		opts.FollowerCount = stored
	}

	if historyFile != "" {
		ctx, err := history.LoadFile(historyFile, time.Now())
		if err != nil {
			return nil, err
		}
		opts.RecentPostCount = ctx.RecentPostCount
		opts.HoursSinceLastPost = ctx.HoursSinceLastPost
	}

	if cmd.Flags().Changed("recent-posts") {
		opts.RecentPostCount = recentPosts
	}
	if cmd.Flags().Changed("hours-since") {
		opts.HoursSinceLastPost = hoursSince
	}
	if cmd.Flags().Changed("followers") {
		opts.FollowerCount = followers
	}

	return &opts, nil
}

// loadStoredFollowers reads the persisted follower count, if any.
func loadStoredFollowers(cfg *config.Config) (int, bool, error) {
	kv := store.NewFileStore(cfg.StorePath)
	value, ok, err := kv.Load("followers")
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

var gradeRank = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "F": 4}

// failsMinGrade reports whether grade is strictly below required.
func failsMinGrade(grade, required string) bool {
	if required == "" {
		return false
	}
	req, ok := gradeRank[required]
	if !ok {
		return false
	}
	return gradeRank[grade] > req
}
