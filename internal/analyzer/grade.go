package analyzer

// Display colors for each grade band. The console and any downstream UI
// render scores with these exact values so the two stay in sync.
const (
	colorA = "#00ba7c"
	colorB = "#1d9bf0"
	colorC = "#ffd400"
	colorD = "#ff7a00"
	colorF = "#f4212e"
)

// GradeFromScore maps a 0-100 score to a letter grade. The same thresholds
// are used by all six dimensions and the overall grade.
func GradeFromScore(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// ColorFromScore maps a 0-100 score to its display color, using the same
// thresholds as GradeFromScore.
func ColorFromScore(score int) string {
	switch {
	case score >= 85:
		return colorA
	case score >= 70:
		return colorB
	case score >= 55:
		return colorC
	case score >= 40:
		return colorD
	default:
		return colorF
	}
}

// clampScore bounds a raw score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// finishResult sums the detail weights into base, clamps once at the end,
// and derives the grade and color. Scorers that combine sub-scores
// differently (reach) build their ScoreResult by hand instead.
func finishResult(label, description string, base int, details []ScoreDetail) ScoreResult {
	score := base
	for _, d := range details {
		score += d.Weight
	}
	score = clampScore(score)
	return ScoreResult{
		Score:       score,
		Grade:       GradeFromScore(score),
		Label:       label,
		Description: description,
		Color:       ColorFromScore(score),
		Details:     details,
	}
}
