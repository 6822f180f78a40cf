package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dotcommander/postlint/internal/textutil"
)

var (
	followBaitPhrases = []string{
		"follow for follow",
		"f4f",
		"like for like",
		"l4l",
		"follow back",
		"follow me and",
		"like and follow",
	}

	insultPhrases = []string{
		"idiot",
		"stupid",
		"moron",
		"pathetic",
		"clown",
		"loser",
		"shut up",
		"you people",
	}
)

var repeatedPunctPattern = regexp.MustCompile(`!{3,}|\?{3,}`)

// ScoreRedFlags starts clean at 100 and subtracts for patterns correlated
// with mutes, blocks and reports. Higher is safer.
func (e *Engine) ScoreRedFlags(text string) ScoreResult {
	var details []ScoreDetail
	lower := strings.ToLower(text)
	length := textutil.RuneLength(text)

	if length > 10 && textutil.CapsRatio(text) > 0.5 {
		details = append(details, ScoreDetail{
			Factor:      "All caps",
			Impact:      ImpactNegative,
			Description: "Mostly upper-case text reads as shouting and attracts mutes",
			Weight:      -20,
		})
	}

	switch hashtags := textutil.CountHashtags(text); {
	case hashtags > 5:
		details = append(details, ScoreDetail{
			Factor:      "Hashtag stuffing",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d hashtags is a strong spam signal", hashtags),
			Weight:      -25,
		})
	case hashtags > 3:
		details = append(details, ScoreDetail{
			Factor:      "Many hashtags",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d hashtags starts to look promotional", hashtags),
			Weight:      -10,
		})
	}

	if links := textutil.CountURLs(text); links > 2 {
		details = append(details, ScoreDetail{
			Factor:      "Link stuffing",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d links in one post is a spam pattern", links),
			Weight:      -15,
		})
	}

	if repeatedPunctPattern.MatchString(text) {
		details = append(details, ScoreDetail{
			Factor:      "Repeated punctuation",
			Impact:      ImpactNegative,
			Description: "Runs of !!! or ??? correlate with negative feedback",
			Weight:      -10,
		})
	}

	for _, re := range e.spamPatterns {
		if re.MatchString(text) {
			details = append(details, ScoreDetail{
				Factor:      "Financial spam",
				Impact:      ImpactNegative,
				Description: fmt.Sprintf("Matches a known spam pattern; reports carry a %.0fx penalty", e.weights.Negative.Report),
				Weight:      -30,
			})
			break
		}
	}

	if textutil.ContainsAny(lower, followBaitPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Engagement bait",
			Impact:      ImpactNegative,
			Description: "Follow-for-follow phrasing is explicitly down-ranked",
			Weight:      -25,
		})
	}

	if textutil.ContainsAny(lower, insultPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Hostile language",
			Impact:      ImpactNegative,
			Description: "Insulting or divisive phrasing drives blocks and unfollows",
			Weight:      -15,
		})
	}

	if emoji := textutil.CountEmoji(text); length > 0 && emoji >= 5 && float64(emoji)/float64(length) > 0.15 {
		details = append(details, ScoreDetail{
			Factor:      "Emoji density",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d emoji in %d characters reads as low-effort spam", emoji, length),
			Weight:      -10,
		})
	}

	if len(details) == 0 {
		details = append(details, ScoreDetail{
			Factor:      "Clean content",
			Impact:      ImpactPositive,
			Description: "No mute, block or report signals detected",
			Weight:      0,
		})
	}

	return finishResult(
		"Red Flags",
		"Patterns correlated with mutes, blocks and reports",
		100,
		details,
	)
}
