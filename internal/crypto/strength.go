package crypto

import "unicode/utf8"

// StrengthLabel is the coarse classification of a strength score.
type StrengthLabel string

const (
	StrengthWeak   StrengthLabel = "weak"
	StrengthMedium StrengthLabel = "medium"
	StrengthStrong StrengthLabel = "strong"

	MaxStrengthScore = 6
)

// Strength holds a 0-6 heuristic score and its label.
type Strength struct {
	Score int
	Label StrengthLabel
}

// ScoreStrength awards one point each for length >= 8, length >= 12, a
// lowercase letter, an uppercase letter, a digit, and any other character.
func ScoreStrength(password string) Strength {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	length := utf8.RuneCountInString(password)
	score := 0
	for _, ok := range []bool{
		length >= 8,
		length >= 12,
		hasLower,
		hasUpper,
		hasDigit,
		hasOther,
	} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Label: LabelForScore(score)}
}

// LabelForScore maps 0-2 to weak, 3-4 to medium and 5-6 to strong.
func LabelForScore(score int) StrengthLabel {
	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
