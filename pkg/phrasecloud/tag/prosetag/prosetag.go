// Package prosetag implements the tagging capability on top of the
// jdkato/prose part-of-speech tagger, for use on real free text where a
// trained model beats wordlists. Organization and topic recognition use
// the same gazetteer as the lexicon tagger.
package prosetag

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag"
)

// Tagger tags text with the prose averaged-perceptron model.
type Tagger struct {
	gaz *tag.Gazetteer
}

// New creates a prose-backed tagger. A nil gazetteer disables
// organization and topic recognition.
func New(gaz *tag.Gazetteer) *Tagger {
	return &Tagger{gaz: gaz}
}

// MatchPatterns implements tag.Tagger. Text that the model cannot
// process yields no matches rather than an error; extraction treats such
// text as contributing nothing.
func (t *Tagger) MatchPatterns(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	toks := doc.Tokens()
	words := make([]string, 0, len(toks))
	classes := make([]tag.Class, 0, len(toks))
	for _, tok := range toks {
		words = append(words, strings.ToLower(tok.Text))
		classes = append(classes, classFor(tok.Tag))
	}
	return tag.ScanPatterns(words, classes)
}

// Organizations implements tag.Tagger.
func (t *Tagger) Organizations(text string) []string {
	return t.gaz.Organizations(text)
}

// Topics implements tag.Tagger.
func (t *Tagger) Topics(text string) []string {
	return t.gaz.Topics(text)
}

// classFor maps Penn Treebank tags onto the coarse classes used by
// pattern scanning.
func classFor(ptb string) tag.Class {
	switch {
	case strings.HasPrefix(ptb, "JJ"):
		return tag.Adjective
	case strings.HasPrefix(ptb, "NN"):
		return tag.Noun
	case strings.HasPrefix(ptb, "VB"):
		return tag.Verb
	default:
		return tag.Other
	}
}
