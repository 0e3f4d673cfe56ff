package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/internalerr"
)

// Stoplist is the stop-word list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stop words from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

// Lexicon is the tagging vocabulary configuration: open-class wordlists
// for the lexicon tagger plus the organization/topic gazetteer shared by
// all taggers.
type Lexicon struct {
	Adjectives    []string            `yaml:"adjectives"`
	Verbs         []string            `yaml:"verbs"`
	Nouns         []string            `yaml:"nouns"`
	Organizations map[string][]string `yaml:"organizations"`
	Topics        []string            `yaml:"topics"`
}

// LoadLexicon loads the tagging vocabulary from a YAML file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}
	return &lex, nil
}

// Source describes one data source: which record field carries the
// region key and which carries the free text to summarize.
type Source struct {
	Name        string `yaml:"name"`
	RegionField string `yaml:"region_field"`
	TextField   string `yaml:"text_field"`
}

// Sources is the data-source and display configuration.
type Sources struct {
	Tagger  string   `yaml:"tagger"` // "lexicon" (default) or "prose"
	Limit   int      `yaml:"limit"`
	Palette []string `yaml:"palette"`
	Sources []Source `yaml:"sources"`
}

// LoadSources loads the data-source configuration from a YAML file.
func LoadSources(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the source list for missing fields.
func (s *Sources) Validate() error {
	for i, src := range s.Sources {
		if src.Name == "" {
			return fmt.Errorf("%w: source %d has no name", internalerr.ErrInvalidConfig, i)
		}
		if src.RegionField == "" {
			return fmt.Errorf("%w: source %q has no region_field", internalerr.ErrInvalidConfig, src.Name)
		}
		if src.TextField == "" {
			return fmt.Errorf("%w: source %q has no text_field", internalerr.ErrInvalidConfig, src.Name)
		}
	}
	switch s.Tagger {
	case "", "lexicon", "prose":
	default:
		return fmt.Errorf("%w: unknown tagger %q", internalerr.ErrInvalidConfig, s.Tagger)
	}
	return nil
}
