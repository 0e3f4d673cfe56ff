package config

import (
	"fmt"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag/prosetag"
)

// Loader loads all configuration files and constructs components.
type Loader struct {
	StoplistPath string
	LexiconPath  string
	SourcesPath  string
}

// Components holds the loaded configuration, ready for engine assembly.
type Components struct {
	Stopwords []string
	Tagger    tag.Tagger
	Sources   []Source
	Limit     int
	Palette   []string
}

// Load reads all configuration files and returns initialized components.
// Missing optional paths fall back to empty configuration.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stopwords = sl.Terms
	}

	var lex Lexicon
	if l.LexiconPath != "" {
		loaded, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = *loaded
	}

	gaz := tag.NewGazetteer()
	for name, keywords := range lex.Organizations {
		gaz.AddOrganization(name, keywords)
	}
	for _, topic := range lex.Topics {
		gaz.AddTopic(topic)
	}

	taggerKind := "lexicon"
	if l.SourcesPath != "" {
		srcs, err := LoadSources(l.SourcesPath)
		if err != nil {
			return nil, fmt.Errorf("load sources: %w", err)
		}
		comp.Sources = srcs.Sources
		comp.Limit = srcs.Limit
		comp.Palette = srcs.Palette
		if srcs.Tagger != "" {
			taggerKind = srcs.Tagger
		}
	}

	switch taggerKind {
	case "prose":
		comp.Tagger = prosetag.New(gaz)
	default:
		comp.Tagger = tag.NewLexicon(tag.Wordlists{
			Adjectives: lex.Adjectives,
			Verbs:      lex.Verbs,
			Nouns:      lex.Nouns,
		}, gaz)
	}

	return comp, nil
}
