package extract

import (
	"reflect"
	"testing"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/stoplist"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag"
)

func testExtractor(stops []string) *Extractor {
	gaz := tag.NewGazetteer()
	gaz.AddTopic("internet")
	gaz.AddTopic("computers")
	gaz.AddOrganization("citizens advice", nil)

	tagger := tag.NewLexicon(tag.Wordlists{
		Adjectives: []string{"digital", "modern", "friendly", "new", "online"},
		Verbs:      []string{"providing"},
		Nouns:      []string{"skills", "training", "support", "facilities", "access", "safety", "inclusion"},
	}, gaz)

	return New(tagger, stoplist.New(stops))
}

func TestPhrasesDeduplicates(t *testing.T) {
	ex := testExtractor(nil)

	got := ex.Phrases("digital skills digital skills training")
	want := []string{"digital skills", "digital skills training"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Phrases = %v, want %v", got, want)
	}

	seen := make(map[string]struct{})
	for _, p := range got {
		if _, dup := seen[p]; dup {
			t.Errorf("duplicate phrase %q in result", p)
		}
		seen[p] = struct{}{}
	}
}

func TestPhrasesUnionOfClasses(t *testing.T) {
	ex := testExtractor(nil)

	got := ex.Phrases("Citizens Advice providing access to computers and the internet")
	wantMembers := []string{"providing access", "citizens advice", "computers", "internet"}
	for _, w := range wantMembers {
		found := false
		for _, p := range got {
			if p == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Phrases missing %q, got %v", w, got)
		}
	}
}

func TestPhrasesEmptyInput(t *testing.T) {
	ex := testExtractor(nil)

	if got := ex.Phrases(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
	if got := ex.Phrases("  \t "); got != nil {
		t.Errorf("blank input should yield nil, got %v", got)
	}
}

func TestSignificantRejectsStopWords(t *testing.T) {
	stops := []string{"and", "the", "service", "digital skills"}
	ex := testExtractor(stops)

	for _, w := range stops {
		if ex.Significant(w) {
			t.Errorf("Significant(%q) = true, want false for stop word", w)
		}
	}
	// Stop listing wins even when the phrase matches a pattern.
	if ex.Significant("Digital Skills") {
		t.Error("stop-listed phrase should not be significant regardless of case")
	}
}

func TestSignificantStandaloneEvaluation(t *testing.T) {
	ex := testExtractor(nil)

	// Matches a pattern on its own.
	if !ex.Significant("digital skills") {
		t.Error("Significant(digital skills) = false, want true")
	}
	// A bare noun matches no pattern class standalone.
	if ex.Significant("support") {
		t.Error("Significant(support) = true, want false")
	}
	// Topics and organizations qualify standalone.
	if !ex.Significant("internet") {
		t.Error("Significant(internet) = false, want true")
	}
	if !ex.Significant("citizens advice") {
		t.Error("Significant(citizens advice) = false, want true")
	}
}

func TestSignificantEmptyInput(t *testing.T) {
	ex := testExtractor(nil)

	if ex.Significant("") || ex.Significant("   ") {
		t.Error("empty phrase should never be significant")
	}
}

func TestSignificantCachedVerdictStable(t *testing.T) {
	ex := testExtractor(nil)

	first := ex.Significant("digital skills")
	for i := 0; i < 3; i++ {
		if ex.Significant("digital skills") != first {
			t.Fatal("cached verdict changed between calls")
		}
	}
}
