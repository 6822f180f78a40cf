// Package weights holds the static weight table consumed by the scoring
// engine. The values mirror the publicly documented heavy-ranker action
// weights and are read-only after load; scorers never mutate the table.
package weights

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/postlint/internal/schema"
)

// Engagement holds per-action positive multipliers.
type Engagement struct {
	Reply        float64 `yaml:"reply"`
	ProfileClick float64 `yaml:"profileClick"`
	URLClick     float64 `yaml:"urlClick"`
	Repost       float64 `yaml:"repost"`
	Favorite     float64 `yaml:"favorite"`
	VideoView    float64 `yaml:"videoView"`
}

// Negative holds per-action negative multipliers. All values are negative.
type Negative struct {
	Report   float64 `yaml:"report"`
	Mute     float64 `yaml:"mute"`
	Block    float64 `yaml:"block"`
	Unfollow float64 `yaml:"unfollow"`
	DontLike float64 `yaml:"dontLike"`
}

// Diversity holds the author-diversity decay parameters.
type Diversity struct {
	Decay                    float64 `yaml:"decay"`
	Floor                    float64 `yaml:"floor"`
	MaxPostsFromSameAuthor   int     `yaml:"maxPostsFromSameAuthor"`
	OptimalHoursBetweenPosts float64 `yaml:"optimalHoursBetweenPosts"`
}

// Content holds the content-length thresholds shared by the dwell-time
// scorer and the suggestion generator.
type Content struct {
	MinLength         int `yaml:"minLength"`
	OptimalMinLength  int `yaml:"optimalMinLength"`
	OptimalMaxLength  int `yaml:"optimalMaxLength"`
	MaxLength         int `yaml:"maxLength"`
	OptimalLineBreaks int `yaml:"optimalLineBreaks"`
	MaxLineBreaks     int `yaml:"maxLineBreaks"`
}

// Patterns holds the risk-pattern lists used by the filter-risk scorer.
// MutedTerms are matched as case-insensitive substrings; SpamPatterns are
// regular expression sources compiled once by the scorer.
type Patterns struct {
	MutedTerms   []string `yaml:"mutedTerms"`
	SpamPatterns []string `yaml:"spamPatterns"`
}

// Table is the full weight table.
type Table struct {
	Engagement Engagement `yaml:"engagement"`
	Negative   Negative   `yaml:"negative"`
	Diversity  Diversity  `yaml:"diversity"`
	Content    Content    `yaml:"content"`
	Patterns   Patterns   `yaml:"patterns"`
}

// Default returns the built-in weight table.
func Default() Table {
	return Table{
		Engagement: Engagement{
			Reply:        13.5,
			ProfileClick: 12.0,
			URLClick:     11.0,
			Repost:       1.0,
			Favorite:     0.5,
			VideoView:    0.005,
		},
		Negative: Negative{
			Report:   -369.0,
			Mute:     -74.0,
			Block:    -74.0,
			Unfollow: -74.0,
			DontLike: -74.0,
		},
		Diversity: Diversity{
			Decay:                    0.5,
			Floor:                    0.1,
			MaxPostsFromSameAuthor:   2,
			OptimalHoursBetweenPosts: 4,
		},
		Content: Content{
			MinLength:         50,
			OptimalMinLength:  100,
			OptimalMaxLength:  280,
			MaxLength:         500,
			OptimalLineBreaks: 2,
			MaxLineBreaks:     6,
		},
		Patterns: Patterns{
			MutedTerms: []string{
				"giveaway",
				"free money",
				"click here",
				"dm me",
				"cash app",
				"airdrop",
				"nft drop",
				"100% guaranteed",
			},
			SpamPatterns: []string{
				`(?i)buy\s+now`,
				`(?i)limited\s+time\s+offer`,
				`(?i)act\s+fast`,
				`(?i)make\s+\$\d+`,
				`(?i)work\s+from\s+home`,
				`(?i)double\s+your`,
			},
		},
	}
}

// Load returns the default table with any overrides from path applied.
// An empty path returns the defaults unchanged. Override files are
// validated against the embedded CUE schema before being applied, so an
// invalid file never produces a partially-applied table.
func Load(path string) (Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("cannot read weights file %s: %w", path, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return table, fmt.Errorf("cannot parse weights file %s: %w", path, err)
	}

	if errs := schema.ValidateWeights(data); len(errs) > 0 {
		return table, fmt.Errorf("invalid weights file %s: %s", path, errs[0].Message)
	}

	// Re-unmarshal onto the defaults so absent fields keep their values.
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return table, fmt.Errorf("cannot apply weights file %s: %w", path, err)
	}

	return table, nil
}
