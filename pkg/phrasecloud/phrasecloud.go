// Package phrasecloud summarizes free-text records from selected map
// regions as a ranked list of salient phrases, with drill-down back to
// the records behind each phrase.
package phrasecloud

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/extract"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/freq"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/postcode"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/stoplist"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag"
)

// Engine is the word-cloud facade. It holds configuration, not selection
// state, so the UI can rebuild clouds on every selection change; each
// call computes its result fresh from its inputs. Cloud ids draw from a
// shared monotonic entropy source, so an Engine is not safe for
// concurrent use — run independent selections on separate Engines.
type Engine struct {
	extractor *extract.Extractor
	limit     int
	palette   []string
	entropy   *ulid.MonotonicEntropy
}

// Options configures an Engine.
type Options struct {
	Tagger    tag.Tagger
	Stopwords []string
	Limit     int      // ranking cutoff, defaults to freq.DefaultLimit
	Palette   []string // display colors, assigned by rank index
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	limit := opts.Limit
	if limit <= 0 {
		limit = freq.DefaultLimit
	}
	return &Engine{
		extractor: extract.New(opts.Tagger, stoplist.New(opts.Stopwords)),
		limit:     limit,
		palette:   opts.Palette,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Query identifies one (data source, selection) pair: which record
// fields to read and which districts are selected. An empty district
// list selects every record.
type Query struct {
	RegionField string
	TextField   string
	Districts   []string
	Limit       int // overrides the engine limit when positive
}

// Cloud is one computed result set.
type Cloud struct {
	ID          string
	GeneratedAt time.Time
	Entries     []freq.ColoredEntry
}

// BuildCloud filters records to the selected districts, extracts and
// weights phrases from the configured text field, and returns the ranked
// cloud with display colors assigned.
func (e *Engine) BuildCloud(records []record.Record, q Query) Cloud {
	limit := q.Limit
	if limit <= 0 {
		limit = e.limit
	}

	selected := postcode.FilterByDistrict(records, q.RegionField, q.Districts)
	texts := make([]string, 0, len(selected))
	for _, r := range selected {
		text, _ := r.Field(q.TextField)
		texts = append(texts, text)
	}

	entries := freq.Process(e.extractor, texts, limit)
	return Cloud{
		ID:          ulid.MustNew(ulid.Now(), e.entropy).String(),
		GeneratedAt: time.Now(),
		Entries:     freq.Colorize(entries, e.palette),
	}
}

// DrillDown returns the records behind a previously ranked phrase: the
// subset of the same selection whose text field contains the phrase as a
// case-insensitive substring, annotated with the matching field.
func (e *Engine) DrillDown(records []record.Record, q Query, phrase string) []record.Match {
	selected := postcode.FilterByDistrict(records, q.RegionField, q.Districts)
	return record.DrillDown(selected, q.TextField, phrase)
}

// Districts returns the distinct district keys present in the records'
// region field, in first-seen order, for building the selection UI.
func (e *Engine) Districts(records []record.Record, regionField string) []string {
	return postcode.DistinctDistricts(records, regionField)
}

// Areas groups the records' district keys by letter-only area code.
func (e *Engine) Areas(records []record.Record, regionField string) map[string][]string {
	return postcode.GroupByArea(postcode.DistinctDistricts(records, regionField))
}
