package content

import (
	"math"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// wordsPerMinute is the standard silent-reading estimate.
const wordsPerMinute = 200

// countWords counts word-like tokens in the body using Unicode word
// segmentation. Punctuation-only and whitespace tokens are ignored.
func countWords(body string) int {
	count := 0

	tokens := words.FromString(body)
	for tokens.Next() {
		if isWordlike(tokens.Value()) {
			count++
		}
	}

	return count
}

// isWordlike reports whether a segmented token carries at least one
// letter or digit.
func isWordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// estimateReadingTime returns the reading time of a body in whole
// minutes, rounded up, never less than 1.
func estimateReadingTime(body string) int {
	minutes := int(math.Ceil(float64(countWords(body)) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}

	return minutes
}
