package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dotcommander/postlint/internal/textutil"
)

// Phrase lists for the engagement checks. Matching is case-insensitive
// substring containment.
var (
	ctaPhrases = []string{
		"let me know",
		"tell me",
		"drop a comment",
		"reply with",
		"share this",
		"share your",
		"tag someone",
		"what's your",
		"agree or disagree",
	}

	emotionalPhrases = []string{
		"love",
		"hate",
		"amazing",
		"terrible",
		"incredible",
		"unpopular opinion",
		"hot take",
		"honestly",
		"i think",
		"i believe",
		"obsessed",
		"can't believe",
		"blew my mind",
	}

	threadPhrases = []string{
		"🧵",
		"thread",
		"1/",
		"a few thoughts",
	}

	storytellingPhrases = []string{
		"i was",
		"i spent",
		"i learned",
		"i built",
		"i tried",
		"we built",
		"last year i",
		"today i",
		"my journey",
	}
)

var numberedListPattern = regexp.MustCompile(`(?m)(^\d+[.)]\s|top \d+|\d+ (things|ways|reasons|lessons|tips))`)

// ScoreEngagement predicts how strongly a post invites replies, clicks and
// reposts. Base 50; each check contributes independently and the total is
// clamped once at the end.
func (e *Engine) ScoreEngagement(text string) ScoreResult {
	var details []ScoreDetail
	lower := strings.ToLower(text)

	// Questions drive replies, the heaviest-weighted engagement action.
	if q := strings.Count(text, "?"); q > 0 {
		bonus := q * 8
		if bonus > 16 {
			bonus = 16
		}
		details = append(details, ScoreDetail{
			Factor:      "Question",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("Questions invite replies (%.1fx weight in the ranking model)", e.weights.Engagement.Reply),
			Weight:      bonus,
		})
	}

	if textutil.ContainsAny(lower, ctaPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Call to action",
			Impact:      ImpactPositive,
			Description: "A direct call to action nudges readers to respond",
			Weight:      6,
		})
	}

	if textutil.ContainsAny(lower, emotionalPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Emotional language",
			Impact:      ImpactPositive,
			Description: "Opinionated or emotional phrasing correlates with higher reply rates",
			Weight:      7,
		})
	}

	switch mentions := textutil.CountMentions(text); {
	case mentions >= 1 && mentions <= 2:
		details = append(details, ScoreDetail{
			Factor:      "Mentions",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d mention(s) can pull other authors into the conversation", mentions),
			Weight:      5,
		})
	case mentions > 5:
		details = append(details, ScoreDetail{
			Factor:      "Mention overload",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d mentions reads as tag spam", mentions),
			Weight:      -8,
		})
	}

	if textutil.ContainsAny(lower, threadPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Thread indicator",
			Impact:      ImpactPositive,
			Description: "Threads accumulate engagement across every post in the chain",
			Weight:      10,
		})
	}

	if numberedListPattern.MatchString(lower) {
		details = append(details, ScoreDetail{
			Factor:      "Numbered list",
			Impact:      ImpactPositive,
			Description: "List formats are easy to scan and widely reshared",
			Weight:      6,
		})
	}

	if textutil.ContainsAny(lower, storytellingPhrases) {
		details = append(details, ScoreDetail{
			Factor:      "Personal story",
			Impact:      ImpactPositive,
			Description: "First-person storytelling earns profile clicks",
			Weight:      5,
		})
	}

	return finishResult(
		"Engagement",
		"Predicted replies, clicks and reposts",
		50,
		details,
	)
}
