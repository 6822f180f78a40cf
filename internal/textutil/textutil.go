// Package textutil provides pure text-inspection helpers shared by the
// dimension scorers and the suggestion generator. Everything here is
// deterministic and unicode-aware; nothing allocates shared state.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
)

// CountURLs returns the number of http(s) URLs in text.
func CountURLs(text string) int {
	return len(urlPattern.FindAllString(text, -1))
}

// StripURLs removes all http(s) URLs from text and trims the remainder.
func StripURLs(text string) string {
	return strings.TrimSpace(urlPattern.ReplaceAllString(text, ""))
}

// CountHashtags returns the number of #hashtags in text.
func CountHashtags(text string) int {
	return len(hashtagPattern.FindAllString(text, -1))
}

// CountMentions returns the number of @mentions in text.
func CountMentions(text string) int {
	return len(mentionPattern.FindAllString(text, -1))
}

// CapsRatio returns the fraction of letters in text that are upper case.
// Returns 0 for text with no letters.
func CapsRatio(text string) float64 {
	var letters, upper int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// CountEmoji returns the number of emoji runes in text. The ranges cover
// the common pictographic blocks; variation selectors and ZWJ are not
// counted so a joined sequence counts once per base glyph.
func CountEmoji(text string) int {
	count := 0
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF:
			count++
		case r >= 0x2600 && r <= 0x27BF:
			count++
		case r == 0x2B50 || r == 0x2B55:
			count++
		}
	}
	return count
}

// Words splits text on whitespace, dropping empty tokens.
func Words(text string) []string {
	return strings.Fields(text)
}

// AverageWordLength returns the mean rune length of whitespace-separated
// words, or 0 for empty text.
func AverageWordLength(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}

// FirstLine returns the first line of text with surrounding space trimmed.
func FirstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// CountLineBreaks returns the number of newline characters in text.
func CountLineBreaks(text string) int {
	return strings.Count(text, "\n")
}

// ContainsAny reports whether any of the phrases occurs in text,
// case-insensitively.
func ContainsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// MatchAny returns the subset of phrases found in text, case-insensitively,
// in the order given.
func MatchAny(text string, phrases []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			matched = append(matched, p)
		}
	}
	return matched
}

// CountOccurrences returns how many of the phrases occur in text,
// counting each phrase at most once.
func CountOccurrences(text string, phrases []string) int {
	return len(MatchAny(text, phrases))
}

// RuneLength returns the rune count of text. Post length limits are
// expressed in characters, not bytes.
func RuneLength(text string) int {
	return len([]rune(text))
}
