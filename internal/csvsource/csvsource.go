// Package csvsource loads delimited tabular files into ordered record
// sequences for the extraction pipeline. Text fields frequently arrive
// with HTML markup from scraped service directories, so values are
// stripped to plain text on load.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
)

// LoadFile reads a CSV file with a header row into ordered records.
func LoadFile(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// Load reads CSV data with a header row into ordered records. Field
// names come from the header; rows with a mismatched column count are
// logged and skipped rather than aborting the whole file.
func Load(r io.Reader) ([]record.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per row below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []record.Record
	line := 1
	for {
		row, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Warning: skipping malformed row at line %d: %v", line, err)
			continue
		}
		if len(row) != len(header) {
			log.Printf("Warning: skipping row at line %d: %d fields, expected %d", line, len(row), len(header))
			continue
		}

		rec := make(record.Record, len(header))
		for i, name := range header {
			rec[name] = StripHTML(row[i])
		}
		records = append(records, rec)
	}

	return records, nil
}

// StripHTML reduces a value to its plain text content. Values without
// markup pass through unchanged apart from whitespace trimming; values
// that fail to parse are returned as-is.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
