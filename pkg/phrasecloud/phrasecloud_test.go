package phrasecloud

import (
	"strings"
	"testing"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/tag"
)

func testTagger() tag.Tagger {
	gaz := tag.NewGazetteer()
	gaz.AddTopic("internet")
	gaz.AddTopic("computers")

	return tag.NewLexicon(tag.Wordlists{
		Adjectives: []string{"digital", "modern", "friendly", "new", "online"},
		Verbs:      []string{"providing", "learning"},
		Nouns: []string{
			"skills", "training", "support", "facilities", "access",
			"safety", "environment", "inclusion", "community",
		},
	}, gaz)
}

func testRecords() []record.Record {
	return []record.Record{
		{
			"postcode":    "NE1 4ST",
			"description": "Digital skills training and community support with modern facilities",
		},
		{
			"postcode":    "NE2 1AA",
			"description": "Providing access to computers and internet for digital inclusion",
		},
		{
			"postcode":    "TS1 3BB",
			"description": "Friendly environment for learning new digital skills and online safety",
		},
	}
}

// TestEndToEnd walks the complete flow: records in, district selection,
// phrase extraction, weighted ranking, color assignment, drill-down.
func TestEndToEnd(t *testing.T) {
	engine := New(Options{
		Tagger:    testTagger(),
		Stopwords: []string{"and", "the", "for", "with", "to"},
		Palette:   []string{"#1b9e77", "#d95f02", "#7570b3"},
	})

	q := Query{RegionField: "postcode", TextField: "description"}
	cloud := engine.BuildCloud(testRecords(), q)

	if cloud.ID == "" {
		t.Error("cloud should carry an id")
	}
	if len(cloud.Entries) == 0 {
		t.Fatal("cloud has no entries")
	}

	for i := 1; i < len(cloud.Entries); i++ {
		if cloud.Entries[i].Weight > cloud.Entries[i-1].Weight {
			t.Errorf("entries not sorted descending at %d", i)
		}
	}

	foundDigital := false
	for _, e := range cloud.Entries {
		if strings.Contains(strings.ToLower(e.Phrase), "digital") {
			foundDigital = true
		}
		switch e.Phrase {
		case "and", "the", "for", "with", "to":
			t.Errorf("stop word %q leaked into the cloud", e.Phrase)
		}
		if e.Color == "" {
			t.Errorf("entry %q has no color", e.Phrase)
		}
	}
	if !foundDigital {
		t.Errorf("expected a phrase containing 'digital', got %v", cloud.Entries)
	}
}

func TestBuildCloudDistrictSelection(t *testing.T) {
	engine := New(Options{Tagger: testTagger()})
	records := testRecords()

	all := engine.BuildCloud(records, Query{RegionField: "postcode", TextField: "description"})
	ne := engine.BuildCloud(records, Query{
		RegionField: "postcode",
		TextField:   "description",
		Districts:   []string{"NE1", "NE2"},
	})

	if len(ne.Entries) == 0 {
		t.Fatal("NE selection produced no entries")
	}
	if len(ne.Entries) >= len(all.Entries) {
		t.Errorf("narrower selection should drop phrases: %d vs %d", len(ne.Entries), len(all.Entries))
	}

	// Phrases unique to the TS record must be gone.
	for _, e := range ne.Entries {
		if e.Phrase == "online safety" || e.Phrase == "friendly environment" {
			t.Errorf("phrase %q from unselected district leaked in", e.Phrase)
		}
	}
}

func TestBuildCloudEmptySelection(t *testing.T) {
	engine := New(Options{Tagger: testTagger()})

	cloud := engine.BuildCloud(testRecords(), Query{
		RegionField: "postcode",
		TextField:   "description",
		Districts:   []string{"ZZ9"},
	})
	if len(cloud.Entries) != 0 {
		t.Errorf("selection with no matching records should yield no entries, got %v", cloud.Entries)
	}
}

func TestBuildCloudNoRecords(t *testing.T) {
	engine := New(Options{Tagger: testTagger()})

	cloud := engine.BuildCloud(nil, Query{RegionField: "postcode", TextField: "description"})
	if len(cloud.Entries) != 0 {
		t.Errorf("no records should yield no entries, got %v", cloud.Entries)
	}
}

func TestBuildCloudLimitOverride(t *testing.T) {
	engine := New(Options{Tagger: testTagger(), Limit: 50})

	cloud := engine.BuildCloud(testRecords(), Query{
		RegionField: "postcode",
		TextField:   "description",
		Limit:       1,
	})
	if len(cloud.Entries) != 1 {
		t.Errorf("limit override not honored: got %d entries", len(cloud.Entries))
	}
}

func TestCloudIDsDistinct(t *testing.T) {
	engine := New(Options{Tagger: testTagger()})
	q := Query{RegionField: "postcode", TextField: "description"}

	a := engine.BuildCloud(testRecords(), q)
	b := engine.BuildCloud(testRecords(), q)
	if a.ID == b.ID {
		t.Error("consecutive clouds should have distinct ids")
	}
}

func TestDrillDown(t *testing.T) {
	engine := New(Options{Tagger: testTagger()})
	q := Query{RegionField: "postcode", TextField: "description"}

	matches := engine.DrillDown(testRecords(), q, "digital skills")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Field != "description" {
			t.Errorf("match field = %q", m.Field)
		}
	}

	// Selection narrows drill-down too.
	q.Districts = []string{"TS1"}
	matches = engine.DrillDown(testRecords(), q, "digital skills")
	if len(matches) != 1 {
		t.Errorf("TS1-only drill-down expected 1 match, got %d", len(matches))
	}
}

func TestDistrictsAndAreas(t *testing.T) {
	engine := New(Options{Tagger: testTagger()})
	records := testRecords()

	districts := engine.Districts(records, "postcode")
	if len(districts) != 3 {
		t.Fatalf("Districts = %v, want 3 keys", districts)
	}

	areas := engine.Areas(records, "postcode")
	if len(areas["NE"]) != 2 || len(areas["TS"]) != 1 {
		t.Errorf("Areas = %v", areas)
	}
}
