// Package extract turns one free-text record into the set of candidate
// phrases it contains and decides which of them are worth counting.
package extract

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/stoplist"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag"
)

// defaultCacheSize bounds the significance-verdict cache. Verdicts are
// pure functions of the phrase, so memoizing them is safe; the same
// phrases recur constantly across selection changes.
const defaultCacheSize = 4096

// Extractor extracts candidate phrases from text and filters them for
// significance. It is safe for concurrent use when its tagger is.
type Extractor struct {
	tagger tag.Tagger
	stops  *stoplist.Set
	cache  *lru.Cache[string, bool]
}

// New creates an extractor. A nil stoplist disables stop-word rejection.
func New(tagger tag.Tagger, stops *stoplist.Set) *Extractor {
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New[string, bool](defaultCacheSize)
	return &Extractor{
		tagger: tagger,
		stops:  stops,
		cache:  cache,
	}
}

// Phrases returns the distinct phrases found in text: part-of-speech
// pattern matches, organization names, and topic terms, lowercased and
// de-duplicated in first-seen order. Empty input yields nil; the method
// never panics on messy text.
func (e *Extractor) Phrases(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var phrases []string
	add := func(candidates []string) {
		for _, c := range candidates {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" {
				continue
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			phrases = append(phrases, c)
		}
	}

	add(e.tagger.MatchPatterns(text))
	add(e.tagger.Organizations(text))
	add(e.tagger.Topics(text))
	return phrases
}

// Significant reports whether a phrase is worth counting: not a stop
// word, and independently matching at least one phrase class when the
// tagger is re-run on the bare phrase. Significance is deliberately
// evaluated standalone, decoupled from the sentence the phrase was
// extracted from.
func (e *Extractor) Significant(phrase string) bool {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return false
	}
	if e.stops.Contains(phrase) {
		return false
	}

	if verdict, ok := e.cache.Get(phrase); ok {
		return verdict
	}

	verdict := len(e.tagger.MatchPatterns(phrase)) > 0 ||
		len(e.tagger.Organizations(phrase)) > 0 ||
		len(e.tagger.Topics(phrase)) > 0
	e.cache.Add(phrase, verdict)
	return verdict
}
