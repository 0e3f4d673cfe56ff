package record

import "strings"

// Record is a single ingested row: a mapping from field name to raw value.
// Records are owned by the ingestion side and treated as read-only here.
type Record map[string]string

// Field looks up a named field. The second return reports whether the
// field exists; an empty string with true means the field is present
// but blank.
func (r Record) Field(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r[name]
	return v, ok
}

// Match annotates a record with the field that matched a drill-down lookup.
type Match struct {
	Record Record
	Field  string
}

// DrillDown returns the records whose named text field contains the phrase
// as a case-insensitive substring. The phrase is matched verbatim after
// lowercasing; an empty phrase matches nothing.
func DrillDown(records []Record, textField, phrase string) []Match {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return nil
	}

	var matches []Match
	for _, r := range records {
		text, ok := r.Field(textField)
		if !ok || text == "" {
			continue
		}
		if strings.Contains(strings.ToLower(text), phrase) {
			matches = append(matches, Match{Record: r, Field: textField})
		}
	}
	return matches
}
