// Package tag provides the linguistic tagging capability behind phrase
// extraction: part-of-speech sequence matching plus organization and
// topic recognition.
package tag

// Tagger recognizes the phrase classes used by extraction and the
// significance filter. Implementations must be safe for concurrent use
// and must never panic on arbitrary string input; a string that cannot
// be tagged simply yields no matches.
type Tagger interface {
	// MatchPatterns returns the substrings of text that match one of the
	// part-of-speech sequence patterns: one or more adjectives followed
	// by one or more nouns, or a verb followed by one or more nouns.
	// Matches are lowercased, words joined by single spaces.
	MatchPatterns(text string) []string

	// Organizations returns recognized organization names in the text,
	// lowercased.
	Organizations(text string) []string

	// Topics returns recognized topic terms in the text, lowercased.
	Topics(text string) []string
}
