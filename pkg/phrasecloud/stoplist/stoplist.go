// Package stoplist holds the noise-word list used by the significance
// filter: common English function words plus domain jargon that would
// otherwise dominate every cloud.
package stoplist

import "strings"

// Set is a normalized stop-word membership set.
type Set struct {
	stops map[string]struct{}
}

// New creates a set from the given terms. Terms are trimmed and
// lowercased; empty terms are ignored.
func New(terms []string) *Set {
	s := &Set{stops: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Contains reports whether the phrase is a stop word. The phrase is
// normalized (trim + lowercase) before the check.
func (s *Set) Contains(phrase string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stops[normalize(phrase)]
	return ok
}

// Add inserts a term into the set.
func (s *Set) Add(term string) {
	t := normalize(term)
	if t == "" {
		return
	}
	s.stops[t] = struct{}{}
}

// Remove deletes a term from the set.
func (s *Set) Remove(term string) {
	delete(s.stops, normalize(term))
}

// All returns every stop word in the set, in no particular order.
func (s *Set) All() []string {
	out := make([]string, 0, len(s.stops))
	for t := range s.stops {
		out = append(out, t)
	}
	return out
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
