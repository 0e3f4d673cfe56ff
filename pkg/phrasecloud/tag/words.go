package tag

import (
	"strings"
	"unicode"
)

// Words splits text into lowercased word tokens, preserving order.
// Letters, digits, hyphens and apostrophes are word characters;
// everything else separates words. Leading/trailing hyphens and
// apostrophes are stripped from each token.
func Words(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.Trim(current.String(), "-'")
		if word != "" {
			words = append(words, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return words
}
