package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dotcommander/postlint/internal/textutil"
)

var (
	attentionPhrases = []string{
		"breaking",
		"how i",
		"why ",
		"what ",
		"stop ",
		"imagine",
		"unpopular opinion",
		"here's",
		"nobody talks about",
		"the secret",
	}

	curiosityPhrases = []string{
		"but ",
		"however",
		"here's why",
		"here's how",
		"the catch",
		"👇",
	}
)

var statisticPattern = regexp.MustCompile(`\d+(\.\d+)?%|\$\d+|\b\d{2,}\b`)

var quotePattern = regexp.MustCompile(`"[^"]{3,}"|“[^”]{3,}”`)

// ScoreDwellTime predicts how long a reader lingers before scrolling past.
// Base 50. Empty text yields the base untouched.
func (e *Engine) ScoreDwellTime(text string) ScoreResult {
	var details []ScoreDetail
	lower := strings.ToLower(text)
	length := textutil.RuneLength(text)
	content := e.weights.Content

	switch {
	case length == 0:
		// Nothing to read; keep the base.
	case length >= content.OptimalMinLength && length <= content.OptimalMaxLength:
		details = append(details, ScoreDetail{
			Factor:      "Optimal length",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d characters sits in the %d-%d sweet spot", length, content.OptimalMinLength, content.OptimalMaxLength),
			Weight:      15,
		})
	case length < content.MinLength:
		details = append(details, ScoreDetail{
			Factor:      "Too short",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d characters gives readers almost nothing to dwell on", length),
			Weight:      -15,
		})
	case length > content.OptimalMaxLength && length <= content.MaxLength:
		details = append(details, ScoreDetail{
			Factor:      "Long form",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d characters of long-form content holds attention", length),
			Weight:      10,
		})
	case length > content.MaxLength:
		details = append(details, ScoreDetail{
			Factor:      "Very long",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d characters still adds dwell, with diminishing returns", length),
			Weight:      5,
		})
	}

	if breaks := textutil.CountLineBreaks(text); breaks >= content.OptimalLineBreaks {
		bonus := breaks * 3
		if bonus > 9 {
			bonus = 9
		}
		details = append(details, ScoreDetail{
			Factor:      "Line breaks",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d line breaks make the post easy to keep reading", breaks),
			Weight:      bonus,
		})
	}

	if first := textutil.FirstLine(text); textutil.RuneLength(first) > 10 && hasStrongHook(first) {
		details = append(details, ScoreDetail{
			Factor:      "Strong hook",
			Impact:      ImpactPositive,
			Description: "The first line stops the scroll",
			Weight:      12,
		})
	}

	switch avg := textutil.AverageWordLength(text); {
	case avg >= 4 && avg <= 6:
		details = append(details, ScoreDetail{
			Factor:      "Readable words",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("Average word length %.1f reads smoothly", avg),
			Weight:      8,
		})
	case avg > 8:
		details = append(details, ScoreDetail{
			Factor:      "Dense words",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("Average word length %.1f slows readers down", avg),
			Weight:      -8,
		})
	}

	if hasCuriosityGap(text, lower) {
		details = append(details, ScoreDetail{
			Factor:      "Curiosity gap",
			Impact:      ImpactPositive,
			Description: "An open loop keeps readers from scrolling away",
			Weight:      7,
		})
	}

	if emoji := textutil.CountEmoji(text); emoji >= 1 && emoji <= 3 {
		details = append(details, ScoreDetail{
			Factor:      "Emoji accent",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d emoji break up the text without overwhelming it", emoji),
			Weight:      5,
		})
	}

	if quotePattern.MatchString(text) || statisticPattern.MatchString(text) {
		details = append(details, ScoreDetail{
			Factor:      "Concrete detail",
			Impact:      ImpactPositive,
			Description: "A quote or statistic gives readers something to chew on",
			Weight:      6,
		})
	}

	return finishResult(
		"Dwell Time",
		"Predicted time a reader spends before scrolling past",
		50,
		details,
	)
}

// hasStrongHook reports whether a first line opens with an attention
// phrase, a question, a digit, or a quotation mark.
func hasStrongHook(firstLine string) bool {
	lower := strings.ToLower(firstLine)
	for _, p := range attentionPhrases {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	if strings.Contains(firstLine, "?") {
		return true
	}
	runes := []rune(firstLine)
	if len(runes) == 0 {
		return false
	}
	if unicode.IsDigit(runes[0]) {
		return true
	}
	switch runes[0] {
	case '"', '“', '\'', '‘':
		return true
	}
	return false
}

// hasCuriosityGap reports trailing ellipsis, contrastive connectors, or a
// downward-pointing emoji.
func hasCuriosityGap(text, lower string) bool {
	trimmed := strings.TrimSpace(text)
	if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…") {
		return true
	}
	return textutil.ContainsAny(lower, curiosityPhrases)
}
