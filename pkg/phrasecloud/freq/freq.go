// Package freq accumulates weighted phrase frequencies across a batch of
// texts and produces a stable, size-bounded ranking for display.
package freq

import (
	"sort"
	"strings"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/extract"
)

// DefaultLimit is the ranking cutoff when the caller does not supply one.
const DefaultLimit = 50

// multiWordWeight and singleWordWeight implement the weighting rule:
// multi-word phrases carry more signal than single words and count
// double per occurrence.
const (
	multiWordWeight  = 2
	singleWordWeight = 1
)

// Table is a phrase-to-weight accumulator that remembers insertion
// order. Insertion order is a deterministic function of text-processing
// order and supplies the tie-break for equal weights in ranking.
type Table struct {
	weights map[string]int
	order   []string
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{weights: make(map[string]int)}
}

// Add accumulates weight for a phrase. First insertion fixes the
// phrase's position in the tie-break order.
func (t *Table) Add(phrase string, weight int) {
	if phrase == "" || weight <= 0 {
		return
	}
	if _, ok := t.weights[phrase]; !ok {
		t.order = append(t.order, phrase)
	}
	t.weights[phrase] += weight
}

// Weight returns the accumulated weight for a phrase, zero if absent.
func (t *Table) Weight(phrase string) int {
	if t == nil {
		return 0
	}
	return t.weights[phrase]
}

// Len returns the number of distinct phrases in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Entry is one ranked result: a phrase and its accumulated weight.
type Entry struct {
	Phrase string `json:"phrase"`
	Weight int    `json:"weight"`
}

// Entries returns the table contents in insertion order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.order))
	for _, p := range t.order {
		entries = append(entries, Entry{Phrase: p, Weight: t.weights[p]})
	}
	return entries
}

// Count runs every non-empty text through extraction and significance
// filtering and accumulates weights: 2 per occurrence of a multi-word
// phrase, 1 per occurrence of a single word. Within one text each
// distinct phrase counts once (extraction is set-valued); across texts
// weights add up. Nil and empty texts are skipped without error.
func Count(ex *extract.Extractor, texts []string) *Table {
	table := NewTable()
	if ex == nil {
		return table
	}
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, phrase := range ex.Phrases(text) {
			if !ex.Significant(phrase) {
				continue
			}
			table.Add(phrase, weightOf(phrase))
		}
	}
	return table
}

// RankTop sorts the table by weight descending and truncates to limit.
// Equal weights keep first-inserted-first order, so results are fully
// deterministic for a given text-processing order. A nil table or
// non-positive limit yields nil.
func RankTop(t *Table, limit int) []Entry {
	if t == nil || limit <= 0 || t.Len() == 0 {
		return nil
	}
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Process is the per-batch entry point: count then rank. A limit of zero
// or below falls back to DefaultLimit.
func Process(ex *extract.Extractor, texts []string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return RankTop(Count(ex, texts), limit)
}

// weightOf returns the per-occurrence weight for a phrase: multi-word
// phrases (interior whitespace) count double.
func weightOf(phrase string) int {
	if strings.ContainsAny(phrase, " \t") {
		return multiWordWeight
	}
	return singleWordWeight
}

// ColoredEntry pairs a ranked entry with a display color.
type ColoredEntry struct {
	Entry
	Color string `json:"color"`
}

// Colorize assigns palette colors to ranked entries by index modulo the
// palette length. It is a pure function: the same entries and palette
// always produce the same assignment, with no counter surviving between
// calls. An empty palette yields entries with empty colors.
func Colorize(entries []Entry, palette []string) []ColoredEntry {
	out := make([]ColoredEntry, len(entries))
	for i, e := range entries {
		out[i].Entry = e
		if len(palette) > 0 {
			out[i].Color = palette[i%len(palette)]
		}
	}
	return out
}
