package tag

import "strings"

// Class is the coarse part-of-speech class used by pattern matching.
type Class int

const (
	Other Class = iota
	Adjective
	Verb
	Noun
)

// ScanPatterns walks a classified word sequence and returns the
// substrings matching either sequence pattern: one or more adjectives
// followed by one or more nouns, or a verb followed by one or more
// nouns. Words must already be lowercased; matches join words with
// single spaces. Matched runs are consumed, so scanning resumes after
// the end of each match.
func ScanPatterns(words []string, classes []Class) []string {
	if len(words) != len(classes) {
		return nil
	}

	var matches []string
	i := 0
	for i < len(words) {
		switch classes[i] {
		case Adjective:
			j := i
			for j < len(words) && classes[j] == Adjective {
				j++
			}
			if j < len(words) && classes[j] == Noun {
				k := j
				for k < len(words) && classes[k] == Noun {
					k++
				}
				matches = append(matches, strings.Join(words[i:k], " "))
				i = k
			} else {
				i = j
			}
		case Verb:
			if i+1 < len(words) && classes[i+1] == Noun {
				k := i + 1
				for k < len(words) && classes[k] == Noun {
					k++
				}
				matches = append(matches, strings.Join(words[i:k], " "))
				i = k
			} else {
				i++
			}
		default:
			i++
		}
	}
	return matches
}
