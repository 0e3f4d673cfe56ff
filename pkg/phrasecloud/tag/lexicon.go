package tag

import "strings"

// functionWords is the closed class of English words that never start or
// extend a content phrase: articles, conjunctions, prepositions,
// pronouns, auxiliaries. Membership here is linguistic, not
// configuration, so it ships with the tagger.
var functionWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"with": {}, "without": {}, "by": {}, "from": {}, "into": {}, "onto": {},
	"about": {}, "over": {}, "under": {}, "between": {}, "through": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"my": {}, "your": {}, "his": {}, "its": {}, "our": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {},
	"do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "shall": {}, "should": {}, "can": {},
	"could": {}, "may": {}, "might": {}, "must": {},
	"not": {}, "no": {}, "as": {}, "if": {}, "than": {}, "then": {},
	"there": {}, "here": {}, "when": {}, "where": {}, "while": {},
	"who": {}, "whom": {}, "whose": {}, "which": {}, "what": {}, "how": {},
	"all": {}, "any": {}, "some": {}, "each": {}, "every": {}, "both": {},
	"also": {}, "very": {}, "too": {}, "more": {}, "most": {},
}

// adjectiveSuffixes identify likely adjectives among unlisted words.
var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "ical", "ial", "less", "ish"}

// Wordlists supplies the open-class vocabulary for the lexicon tagger.
// Lists are consulted before suffix heuristics, so an entry in Nouns wins
// over an adjective-looking suffix ("training" stays a noun even though
// it ends in -ing).
type Wordlists struct {
	Adjectives []string
	Verbs      []string
	Nouns      []string
}

// Lexicon is a deterministic wordlist-driven tagger. It classifies each
// word by lookup, falls back to suffix heuristics, defaults unknown
// words to nouns, then scans for the part-of-speech sequence patterns.
// Organization and topic recognition delegate to a Gazetteer.
type Lexicon struct {
	adjectives map[string]struct{}
	verbs      map[string]struct{}
	nouns      map[string]struct{}
	gaz        *Gazetteer
}

// NewLexicon creates a lexicon tagger from wordlists and a gazetteer.
// A nil gazetteer disables organization and topic recognition.
func NewLexicon(lists Wordlists, gaz *Gazetteer) *Lexicon {
	return &Lexicon{
		adjectives: toSet(lists.Adjectives),
		verbs:      toSet(lists.Verbs),
		nouns:      toSet(lists.Nouns),
		gaz:        gaz,
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// MatchPatterns implements Tagger.
func (l *Lexicon) MatchPatterns(text string) []string {
	words := Words(text)
	if len(words) == 0 {
		return nil
	}
	classes := make([]Class, len(words))
	for i, w := range words {
		classes[i] = l.classify(w)
	}
	return ScanPatterns(words, classes)
}

// Organizations implements Tagger.
func (l *Lexicon) Organizations(text string) []string {
	return l.gaz.Organizations(text)
}

// Topics implements Tagger.
func (l *Lexicon) Topics(text string) []string {
	return l.gaz.Topics(text)
}

func (l *Lexicon) classify(word string) Class {
	if _, ok := functionWords[word]; ok {
		return Other
	}
	if _, ok := l.adjectives[word]; ok {
		return Adjective
	}
	if _, ok := l.verbs[word]; ok {
		return Verb
	}
	if _, ok := l.nouns[word]; ok {
		return Noun
	}
	if isNumeric(word) {
		return Other
	}
	for _, suf := range adjectiveSuffixes {
		if len(word) > len(suf)+1 && strings.HasSuffix(word, suf) {
			return Adjective
		}
	}
	// Unknown open-class words are treated as nouns, the most common
	// class in service descriptions.
	return Noun
}

func isNumeric(word string) bool {
	for _, r := range word {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return len(word) > 0
}
