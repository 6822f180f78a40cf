package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/postlint/internal/textutil"
)

// Broad-topic keyword categories that travel well out of network. Order is
// fixed so detail text is deterministic.
var topicCategories = []struct {
	name    string
	phrases []string
}{
	{"tech", []string{"ai", "software", "startup", "programming", "crypto", "open source"}},
	{"business", []string{"business", "marketing", "career", "money", "investing"}},
	{"science", []string{"science", "research", "study", "space", "climate"}},
	{"health", []string{"health", "fitness", "sleep", "diet", "mental health"}},
	{"culture", []string{"movie", "music", "book", "game", "sports"}},
}

var personalPronouns = map[string]bool{
	"i": true, "i'm": true, "i've": true, "i'd": true,
	"my": true, "me": true, "mine": true,
	"we": true, "we're": true, "our": true, "us": true,
}

// ScoreReach estimates distribution to followers (in-network) and to the
// wider graph (out-of-network). The two sub-scores start at 50, are
// boosted independently, clamped, then combined 40/60 in favor of
// out-of-network reach.
func (e *Engine) ScoreReach(text string, followerCount int) ScoreResult {
	var details []ScoreDetail
	lower := strings.ToLower(text)

	inNetwork := 50
	outOfNetwork := 50

	// Followers always see new posts near the top of their feed.
	inNetwork += 15
	details = append(details, ScoreDetail{
		Factor:      "Recency",
		Impact:      ImpactPositive,
		Description: "A fresh post ranks highly for your followers",
		Weight:      15,
	})

	if textutil.CountMentions(text) > 0 {
		inNetwork += 10
		details = append(details, ScoreDetail{
			Factor:      "Mentions",
			Impact:      ImpactPositive,
			Description: "Mentions notify other authors and their followers",
			Weight:      10,
		})
	}

	var matchedTopics []string
	for _, cat := range topicCategories {
		if textutil.ContainsAny(lower, cat.phrases) {
			matchedTopics = append(matchedTopics, cat.name)
		}
	}
	if len(matchedTopics) > 0 {
		bonus := len(matchedTopics) * 6
		if bonus > 18 {
			bonus = 18
		}
		outOfNetwork += bonus
		details = append(details, ScoreDetail{
			Factor:      "Broad topics",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("Topics with wide appeal: %s", strings.Join(matchedTopics, ", ")),
			Weight:      bonus,
		})
	}

	if hashtags := textutil.CountHashtags(text); hashtags >= 1 && hashtags <= 3 {
		outOfNetwork += 10
		details = append(details, ScoreDetail{
			Factor:      "Focused hashtags",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d hashtag(s) aid topic classification without spam risk", hashtags),
			Weight:      10,
		})
	}

	formatBonus := 0
	if strings.Contains(text, "?") {
		formatBonus += 5
	}
	if textutil.ContainsAny(lower, threadPhrases) {
		formatBonus += 5
	}
	if numberedListPattern.MatchString(lower) {
		formatBonus += 5
	}
	if formatBonus > 0 {
		outOfNetwork += formatBonus
		details = append(details, ScoreDetail{
			Factor:      "Engaging format",
			Impact:      ImpactPositive,
			Description: "Question, thread or list formats travel beyond your graph",
			Weight:      formatBonus,
		})
	}

	switch {
	case followerCount > 10000:
		outOfNetwork += 15
		details = append(details, ScoreDetail{
			Factor:      "Large audience",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d followers seed strong initial engagement signals", followerCount),
			Weight:      15,
		})
	case followerCount > 1000:
		outOfNetwork += 8
		details = append(details, ScoreDetail{
			Factor:      "Growing audience",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d followers give the post a decent launch pad", followerCount),
			Weight:      8,
		})
	}

	if personal := countPersonalPronouns(lower); personal > 3 {
		outOfNetwork -= 10
		details = append(details, ScoreDetail{
			Factor:      "Personal voice",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d personal pronouns travel less beyond your graph", personal),
			Weight:      -10,
		})
		inNetwork += 5
		details = append(details, ScoreDetail{
			Factor:      "Follower resonance",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d personal pronouns resonate with your followers", personal),
			Weight:      5,
		})
	}

	inNetwork = clampScore(inNetwork)
	outOfNetwork = clampScore(outOfNetwork)
	score := int(math.Round(float64(inNetwork)*0.4 + float64(outOfNetwork)*0.6))

	summary := ScoreDetail{
		Factor:      "Reach split",
		Impact:      ImpactNeutral,
		Description: fmt.Sprintf("In-network %d, out-of-network %d", inNetwork, outOfNetwork),
		Weight:      0,
	}
	details = append([]ScoreDetail{summary}, details...)

	return ScoreResult{
		Score:       score,
		Grade:       GradeFromScore(score),
		Label:       "Reach",
		Description: "Estimated distribution to followers and beyond",
		Color:       ColorFromScore(score),
		Details:     details,
	}
}

// countPersonalPronouns counts first-person tokens in already-lowercased
// text. Trailing punctuation is trimmed per token.
func countPersonalPronouns(lower string) int {
	count := 0
	for _, word := range strings.Fields(lower) {
		word = strings.Trim(word, ".,!?;:()\"'")
		if personalPronouns[word] {
			count++
		}
	}
	return count
}
