package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/civicsight/phrasecloud/internal/csvsource"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/config"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/freq"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/internalerr"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/store"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/store/memstore"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/store/sqlite"
)

type cloudJSON struct {
	Source  string              `json:"source"`
	CloudID string              `json:"cloud_id"`
	Entries []freq.ColoredEntry `json:"entries"`
}

func main() {
	var (
		stoplistCfg = flag.String("stoplist", "", "Stoplist YAML file")
		lexiconCfg  = flag.String("lexicon", "", "Lexicon/gazetteer YAML file")
		sourcesCfg  = flag.String("sources", "", "Data sources YAML file (required)")
		csvInputs   = flag.String("csv", "", "CSV inputs as name=path, comma-separated")
		dbPath      = flag.String("db", "", "Optional SQLite dataset catalog; CSVs are ingested, missing sources loaded")
		districts   = flag.String("districts", "", "Selected district keys, comma-separated (empty = all)")
		limit       = flag.Int("limit", 0, "Ranking cutoff (0 = configured/default)")
		phrase      = flag.String("phrase", "", "Drill down to records containing this phrase")
		asJSON      = flag.Bool("json", false, "Emit JSON instead of text")
	)
	flag.Parse()

	if *sourcesCfg == "" {
		log.Fatal("--sources required")
	}

	ctx := context.Background()

	loader := config.Loader{
		StoplistPath: *stoplistCfg,
		LexiconPath:  *lexiconCfg,
		SourcesPath:  *sourcesCfg,
	}
	comp, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	catalog, err := openCatalog(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}
	defer catalog.Close()

	if err := ingestCSVs(ctx, catalog, *csvInputs); err != nil {
		log.Fatalf("ingest: %v", err)
	}

	engine := phrasecloud.New(phrasecloud.Options{
		Tagger:    comp.Tagger,
		Stopwords: comp.Stopwords,
		Limit:     comp.Limit,
		Palette:   comp.Palette,
	})

	selection := splitList(*districts)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, src := range comp.Sources {
		records, err := catalog.Dataset(ctx, src.Name)
		if errors.Is(err, internalerr.ErrNotFound) {
			log.Printf("Warning: no dataset for source %q, skipping", src.Name)
			continue
		}
		if err != nil {
			log.Fatalf("load dataset %q: %v", src.Name, err)
		}

		q := phrasecloud.Query{
			RegionField: src.RegionField,
			TextField:   src.TextField,
			Districts:   selection,
			Limit:       *limit,
		}

		if *phrase != "" {
			printDrillDown(enc, *asJSON, src.Name, engine.DrillDown(records, q, *phrase))
			continue
		}

		cloud := engine.BuildCloud(records, q)
		if *asJSON {
			if err := enc.Encode(cloudJSON{Source: src.Name, CloudID: cloud.ID, Entries: cloud.Entries}); err != nil {
				log.Fatalf("encode: %v", err)
			}
			continue
		}

		fmt.Printf("%s (%s)\n", src.Name, cloud.ID)
		for _, e := range cloud.Entries {
			fmt.Printf("  %4d  %s\n", e.Weight, e.Phrase)
		}
	}
}

// openCatalog returns the sqlite catalog when a path is given, otherwise
// an in-memory one for single-shot runs.
func openCatalog(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return memstore.New(), nil
	}
	return sqlite.Open(ctx, path)
}

// ingestCSVs parses name=path pairs, loads each CSV, and saves it to the
// catalog under its source name.
func ingestCSVs(ctx context.Context, catalog store.Store, inputs string) error {
	for _, part := range splitList(inputs) {
		name, path, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("bad --csv entry %q, want name=path", part)
		}
		records, err := csvsource.LoadFile(path)
		if err != nil {
			return err
		}
		if err := catalog.SaveDataset(ctx, name, records); err != nil {
			return fmt.Errorf("save dataset %q: %w", name, err)
		}
		log.Printf("loaded %d records into %q", len(records), name)
	}
	return nil
}

func printDrillDown(enc *json.Encoder, asJSON bool, source string, matches []record.Match) {
	if asJSON {
		type matchJSON struct {
			Source string        `json:"source"`
			Field  string        `json:"field"`
			Record record.Record `json:"record"`
		}
		for _, m := range matches {
			if err := enc.Encode(matchJSON{Source: source, Field: m.Field, Record: m.Record}); err != nil {
				log.Fatalf("encode: %v", err)
			}
		}
		return
	}
	fmt.Printf("%s: %d matching records\n", source, len(matches))
	for _, m := range matches {
		fmt.Printf("  [%s] %s\n", m.Field, m.Record[m.Field])
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
