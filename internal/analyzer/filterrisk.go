package analyzer

import (
	"fmt"
	"strings"

	"github.com/dotcommander/postlint/internal/textutil"
)

var (
	linkShortenerDomains = []string{
		"bit.ly",
		"tinyurl.com",
		"ow.ly",
		"buff.ly",
		"is.gd",
		"cutt.ly",
		"shorturl.at",
	}

	duplicateContentPhrases = []string{
		"repost this",
		"copy and paste",
		"copypasta",
		"reposting because",
		"posting this again",
	}

	violenceTriggerPhrases = []string{
		"kill",
		"shoot",
		"attack them",
		"beat up",
		"destroy them",
	}

	adultTriggerPhrases = []string{
		"nsfw",
		"18+",
		"onlyfans",
		"explicit",
	}

	promoPhrases = []string{
		"discount",
		"promo code",
		"use code",
		"% off",
		"sale ends",
		"order now",
		"link in bio",
		"limited offer",
	}

	platformNames = []string{
		"instagram",
		"tiktok",
		"youtube",
		"facebook",
		"twitch",
		"linkedin",
		"snapchat",
		"substack",
	}
)

// ScoreFilterRisk estimates the chance the post is suppressed by keyword,
// spam or safety filters before ranking even starts. Base 100; higher
// means less likely to be filtered.
func (e *Engine) ScoreFilterRisk(text string) ScoreResult {
	var details []ScoreDetail
	lower := strings.ToLower(text)

	if matched := textutil.MatchAny(lower, e.weights.Patterns.MutedTerms); len(matched) > 0 {
		penalty := len(matched) * 10
		if penalty > 30 {
			penalty = 30
		}
		details = append(details, ScoreDetail{
			Factor:      "Muted terms",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("Commonly muted terms found: %s", strings.Join(matched, ", ")),
			Weight:      -penalty,
		})
	}

	if hashtags := textutil.CountHashtags(text); hashtags > 10 {
		details = append(details, ScoreDetail{
			Factor:      "Hashtag flood",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d hashtags trips spam filters outright", hashtags),
			Weight:      -25,
		})
	}

	if textutil.ContainsAny(lower, linkShortenerDomains) {
		details = append(details, ScoreDetail{
			Factor:      "Link shortener",
			Impact:      ImpactNegative,
			Description: "Shortened links are treated as obfuscated destinations",
			Weight:      -15,
		})
	}

	if textutil.ContainsAny(lower, duplicateContentPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Duplicate content",
			Impact:      ImpactNegative,
			Description: "Reposted content is de-duplicated and down-ranked",
			Weight:      -10,
		})
	}

	triggerTypes := 0
	if textutil.ContainsAny(lower, violenceTriggerPhrases) {
		triggerTypes++
	}
	if textutil.ContainsAny(lower, adultTriggerPhrases) {
		triggerTypes++
	}
	if triggerTypes > 0 {
		details = append(details, ScoreDetail{
			Factor:      "Safety triggers",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d safety trigger categor%s matched", triggerTypes, pluralY(triggerTypes)),
			Weight:      -20 * triggerTypes,
		})
	}

	if promos := textutil.CountOccurrences(lower, promoPhrases); promos > 2 {
		details = append(details, ScoreDetail{
			Factor:      "Promotional language",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d promotional phrases reads as an ad", promos),
			Weight:      -15,
		})
	}

	if platforms := textutil.CountOccurrences(lower, platformNames); platforms > 1 {
		details = append(details, ScoreDetail{
			Factor:      "Cross-platform promotion",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("Mentioning %d other platforms is down-ranked", platforms),
			Weight:      -10,
		})
	}

	if len(details) == 0 {
		details = append(details, ScoreDetail{
			Factor:      "No filter triggers",
			Impact:      ImpactPositive,
			Description: "Nothing here should trip visibility filters",
			Weight:      0,
		})
	}

	return finishResult(
		"Filter Risk",
		"Likelihood of suppression by keyword, spam or safety filters",
		100,
		details,
	)
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
