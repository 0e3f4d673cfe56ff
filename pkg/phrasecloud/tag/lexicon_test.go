package tag

import (
	"reflect"
	"testing"
)

func testLexicon() *Lexicon {
	gaz := NewGazetteer()
	gaz.AddTopic("internet")
	gaz.AddOrganization("citizens advice", nil)

	return NewLexicon(Wordlists{
		Adjectives: []string{"digital", "modern", "friendly", "new", "online", "free"},
		Verbs:      []string{"providing", "offering"},
		Nouns:      []string{"skills", "training", "support", "facilities", "access", "learning"},
	}, gaz)
}

func TestMatchPatternsAdjectiveNoun(t *testing.T) {
	lex := testLexicon()

	got := lex.MatchPatterns("Digital skills training and modern facilities")
	want := []string{"digital skills training", "modern facilities"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchPatterns = %v, want %v", got, want)
	}
}

func TestMatchPatternsAdjectiveRun(t *testing.T) {
	lex := testLexicon()

	got := lex.MatchPatterns("free online digital skills")
	want := []string{"free online digital skills"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("adjective run should be captured whole, got %v", got)
	}
}

func TestMatchPatternsVerbNoun(t *testing.T) {
	lex := testLexicon()

	got := lex.MatchPatterns("providing access for residents")
	want := []string{"providing access"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchPatterns = %v, want %v", got, want)
	}
}

func TestMatchPatternsFunctionWordsBreakRuns(t *testing.T) {
	lex := testLexicon()

	// "and" separates the adjective from the noun, so no phrase spans it.
	got := lex.MatchPatterns("digital and skills")
	if len(got) != 0 {
		t.Errorf("expected no matches across function words, got %v", got)
	}
}

func TestMatchPatternsAdjectiveWithoutNoun(t *testing.T) {
	lex := testLexicon()

	if got := lex.MatchPatterns("very modern and friendly"); len(got) != 0 {
		t.Errorf("adjectives without a following noun should not match, got %v", got)
	}
}

func TestMatchPatternsEmpty(t *testing.T) {
	lex := testLexicon()

	if got := lex.MatchPatterns(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
	if got := lex.MatchPatterns("   "); got != nil {
		t.Errorf("blank input should yield nil, got %v", got)
	}
}

func TestClassifySuffixHeuristics(t *testing.T) {
	lex := NewLexicon(Wordlists{}, nil)

	tests := []struct {
		word string
		want Class
	}{
		{"spacious", Adjective},
		{"helpful", Adjective},
		{"accessible", Adjective},
		{"practical", Adjective},
		{"banana", Noun}, // unknown defaults to noun
		{"42", Other},
		{"the", Other},
	}
	for _, tt := range tests {
		if got := lex.classify(tt.word); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWordlistBeatsSuffix(t *testing.T) {
	// "training" ends in -ing but is listed as a noun; the list wins.
	lex := testLexicon()
	if got := lex.classify("training"); got != Noun {
		t.Errorf("classify(training) = %v, want Noun", got)
	}
}

func TestScanPatternsLengthMismatch(t *testing.T) {
	if got := ScanPatterns([]string{"a", "b"}, []Class{Noun}); got != nil {
		t.Errorf("mismatched input should yield nil, got %v", got)
	}
}

func TestLexiconDelegatesGazetteer(t *testing.T) {
	lex := testLexicon()

	if got := lex.Topics("free internet access"); len(got) != 1 || got[0] != "internet" {
		t.Errorf("Topics = %v, want [internet]", got)
	}
	if got := lex.Organizations("ask Citizens Advice first"); len(got) != 1 || got[0] != "citizens advice" {
		t.Errorf("Organizations = %v, want [citizens advice]", got)
	}
}
