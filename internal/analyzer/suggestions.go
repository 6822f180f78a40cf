package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/postlint/internal/textutil"
)

var (
	opinionMarkers = []string{
		"i think",
		"i believe",
		"in my experience",
		"unpopular opinion",
		"hot take",
		"honestly",
		"my take",
	}

	engagementHooks = []string{
		"what do you think",
		"let me know",
		"tell me",
		"agree?",
		"thoughts?",
		"am i wrong",
	}
)

var priorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// GenerateSuggestions turns the post text and the six dimension results
// into an ordered, never-empty list of actionable advice. Every branch is
// an independent check; only the link-only case short-circuits. The final
// list is stably sorted by priority, so suggestions sharing a priority
// keep generation order.
func (e *Engine) GenerateSuggestions(text string, result *AnalysisResult) []Suggestion {
	var suggestions []Suggestion
	lower := strings.ToLower(text)
	stripped := textutil.StripURLs(text)
	strippedLen := textutil.RuneLength(stripped)
	urls := textutil.CountURLs(text)

	// Link-only posts get a fixed trio of warnings and nothing else; the
	// remaining checks would all misfire on near-empty content.
	if urls > 0 && strippedLen < 10 {
		return []Suggestion{
			{
				Type:     SuggestionWarning,
				Category: "content",
				Text:     "This post is only a link. Add your own context so readers know why it matters.",
				Priority: PriorityHigh,
			},
			{
				Type:     SuggestionImprovement,
				Category: "engagement",
				Text:     "Ask a question about the link. Replies are the heaviest-weighted engagement signal.",
				Priority: PriorityHigh,
			},
			{
				Type:     SuggestionWarning,
				Category: "links",
				Text:     "Bare links reach far fewer people than posts with commentary.",
				Priority: PriorityHigh,
			},
		}
	}

	if urls > 0 && strippedLen < 50 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Category: "content",
			Text:     "This post is mostly a link. Lead with your own take before the URL.",
			Priority: PriorityHigh,
		})
	}

	if !strings.Contains(text, "?") {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionImprovement,
			Category: "engagement",
			Text:     "Add a question to invite replies; replies outweigh every other engagement action.",
			Priority: PriorityHigh,
		})
	}

	if strippedLen > 0 && strippedLen < 50 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Category: "content",
			Text:     fmt.Sprintf("Only %d characters of content. Posts under 50 characters rarely earn dwell time.", strippedLen),
			Priority: PriorityHigh,
		})
	}

	if urls > 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Category: "links",
			Text:     "External links are down-ranked. Consider putting the link in a reply instead.",
			Priority: PriorityMedium,
		})
	}

	if strippedLen > 20 && !textutil.ContainsAny(lower, opinionMarkers) && !textutil.ContainsAny(lower, engagementHooks) {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionTip,
			Category: "content",
			Text:     "Add your own opinion or a hook. Neutral posts earn fewer profile clicks.",
			Priority: PriorityMedium,
		})
	}

	if textutil.RuneLength(text) > 20 && textutil.CapsRatio(text) > 0.5 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Category: "formatting",
			Text:     "Mostly upper-case text reads as shouting and attracts mutes. Use normal casing.",
			Priority: PriorityHigh,
		})
	}

	if hashtags := textutil.CountHashtags(text); hashtags > 3 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Category: "hashtags",
			Text:     fmt.Sprintf("%d hashtags is too many. Keep it to 1-3 focused tags.", hashtags),
			Priority: PriorityHigh,
		})
	}

	if result.AuthorDiversity.Score < 60 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Category: "frequency",
			Text:     "You are posting often enough to trigger author-diversity decay. Space posts a few hours apart.",
			Priority: PriorityHigh,
		})
	}

	if result.FilterRisk.Score < 70 {
		if matched := textutil.MatchAny(lower, e.weights.Patterns.MutedTerms); len(matched) > 0 {
			suggestions = append(suggestions, Suggestion{
				Type:     SuggestionWarning,
				Category: "safety",
				Text:     fmt.Sprintf("Rephrase around commonly muted terms: %s.", strings.Join(matched, ", ")),
				Priority: PriorityHigh,
			})
		}
	}

	if len(suggestions) == 0 {
		qualitySum := result.Engagement.Score + result.DwellTime.Score + result.Reach.Score
		if qualitySum > 180 && strings.Contains(text, "?") && strippedLen >= 100 {
			suggestions = append(suggestions, Suggestion{
				Type:     SuggestionTip,
				Category: "general",
				Text:     "Strong post. Good length, a question, and broad appeal. Ship it.",
				Priority: PriorityLow,
			})
		} else {
			if !strings.Contains(text, "?") {
				suggestions = append(suggestions, Suggestion{
					Type:     SuggestionTip,
					Category: "engagement",
					Text:     "A question at the end usually lifts replies.",
					Priority: PriorityMedium,
				})
			}
			if !textutil.ContainsAny(lower, ctaPhrases) {
				suggestions = append(suggestions, Suggestion{
					Type:     SuggestionTip,
					Category: "engagement",
					Text:     "A light call to action gives readers a reason to respond.",
					Priority: PriorityMedium,
				})
			}
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionTip,
			Category: "general",
			Text:     "Looks solid. Post when your audience is most active for the best launch.",
			Priority: PriorityLow,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return priorityRank[suggestions[i].Priority] < priorityRank[suggestions[j].Priority]
	})

	return suggestions
}
