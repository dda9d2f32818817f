package learning

import (
	"regexp"
	"unicode/utf8"
)

// Password strength labels.
const (
	StrengthWeak   = "Weak"
	StrengthOkay   = "Okay"
	StrengthStrong = "Strong"
)

var (
	characterClasses = []*regexp.Regexp{ //nolint: gochecknoglobals
		regexp.MustCompile(`[A-Z]`),
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[0-9]`),
		regexp.MustCompile(`[^A-Za-z0-9]`),
	}
	weakTokens = regexp.MustCompile(`(?i)password|12345|qwerty`) //nolint: gochecknoglobals
)

// EstimatePasswordStrength scores a password between 0 and 100: two points
// per character up to 40, 15 per character class present, minus 30 when a
// well known weak token appears. Length is counted in runes and the score is
// clamped to the range. Scores above 80 are Strong, above 50 Okay.
func EstimatePasswordStrength(password string) (int, string) {
	score := min(40, 2*utf8.RuneCountInString(password))
	for _, rx := range characterClasses {
		if rx.MatchString(password) {
			score += 15
		}
	}
	if weakTokens.MatchString(password) {
		score -= 30
	}
	score = max(0, min(100, score))

	switch {
	case score > 80:
		return score, StrengthStrong
	case score > 50:
		return score, StrengthOkay
	default:
		return score, StrengthWeak
	}
}
