package analyzer

import (
	"fmt"
	"math"
)

// ScoreAuthorDiversity models the feed's author-diversity decay: the more
// the author has posted in the trailing 24h, the harder each additional
// post is down-ranked. Base 100. All adjustments are additive and the
// score is clamped once at the end; clamping between steps would change
// results at the boundaries.
func (e *Engine) ScoreAuthorDiversity(recentPostCount int, hoursSinceLastPost float64) ScoreResult {
	var details []ScoreDetail
	div := e.weights.Diversity

	if recentPostCount == 0 {
		details = append(details, ScoreDetail{
			Factor:      "First post",
			Impact:      ImpactPositive,
			Description: "No recent posts, so no diversity decay applies",
			Weight:      0,
		})
	} else {
		multiplier := (1-div.Floor)*math.Pow(div.Decay, float64(recentPostCount)) + div.Floor
		// Computed from the complement rather than 1-multiplier: the two are
		// algebraically equal, but 1-multiplier lands a hair under 22.5 for a
		// single recent post and would round down instead of away from zero.
		penalty := int(math.Round((1 - div.Floor) * (1 - math.Pow(div.Decay, float64(recentPostCount))) * 50))

		severity := "moderate"
		switch {
		case recentPostCount <= 3:
			severity = "moderate"
		case recentPostCount <= 6:
			severity = "frequent"
		default:
			severity = "over-posting"
		}

		details = append(details, ScoreDetail{
			Factor:      "Diversity decay",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("%d recent posts (%s): visibility multiplier down to %.4f", recentPostCount, severity, multiplier),
			Weight:      -penalty,
		})
	}

	switch {
	case hoursSinceLastPost >= 24:
		details = append(details, ScoreDetail{
			Factor:      "Fresh return",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%.1f hours since the last post resets the decay window", hoursSinceLastPost),
			Weight:      15,
		})
	case hoursSinceLastPost >= div.OptimalHoursBetweenPosts:
		bonus := int(math.Round(hoursSinceLastPost / 2))
		if bonus > 10 {
			bonus = 10
		}
		details = append(details, ScoreDetail{
			Factor:      "Good spacing",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%.1f hours between posts gives each one room to perform", hoursSinceLastPost),
			Weight:      bonus,
		})
	case hoursSinceLastPost < 1:
		details = append(details, ScoreDetail{
			Factor:      "Rapid posting",
			Impact:      ImpactNegative,
			Description: fmt.Sprintf("Posting again after %.1f hours competes with your own previous post", hoursSinceLastPost),
			Weight:      -10,
		})
	}

	if recentPostCount > 10 {
		details = append(details, ScoreDetail{
			Factor:      "Recommendation",
			Impact:      ImpactNeutral,
			Description: fmt.Sprintf("Consider spacing posts at least %.0f hours apart instead of batching", div.OptimalHoursBetweenPosts),
			Weight:      0,
		})
	}

	return finishResult(
		"Author Diversity",
		"Visibility decay from the author's recent posting frequency",
		100,
		details,
	)
}
