package tag

import "strings"

// Gazetteer recognizes configured organization names and topic terms in
// free text. Organizations are keyed by display name with a keyword list
// per name; topics are bare terms, possibly multi-word. All matching is
// case-insensitive and token-based, so "Digital Inclusion" in a sentence
// matches the topic "digital inclusion" but "inclusions" does not.
type Gazetteer struct {
	orgs     map[string][]string // lowercased name -> tokenized keyword phrases
	orgNames []string            // registration order; recognition order must be deterministic
	topics   [][]string          // tokenized topic phrases
}

// NewGazetteer creates an empty gazetteer.
func NewGazetteer() *Gazetteer {
	return &Gazetteer{orgs: make(map[string][]string)}
}

// AddOrganization registers an organization name with the keyword phrases
// that identify it. When keywords is empty the name itself is used.
func (g *Gazetteer) AddOrganization(name string, keywords []string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	if len(keywords) == 0 {
		keywords = []string{name}
	}
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	if _, exists := g.orgs[name]; !exists {
		g.orgNames = append(g.orgNames, name)
	}
	g.orgs[name] = normalized
}

// AddTopic registers a topic term.
func (g *Gazetteer) AddTopic(term string) {
	toks := Words(term)
	if len(toks) > 0 {
		g.topics = append(g.topics, toks)
	}
}

// Organizations returns the names of organizations whose keywords appear
// in the text, in registration order. Recognition order feeds frequency
// insertion order, which is the ranking tie-break, so it must be a
// deterministic function of the input.
func (g *Gazetteer) Organizations(text string) []string {
	if g == nil || len(g.orgs) == 0 {
		return nil
	}
	words := Words(text)
	var found []string
	for _, name := range g.orgNames {
		keywords := g.orgs[name]
		for _, kw := range keywords {
			if containsPhrase(words, Words(kw)) {
				found = append(found, name)
				break
			}
		}
	}
	return found
}

// Topics returns the configured topic terms present in the text, in
// configuration order.
func (g *Gazetteer) Topics(text string) []string {
	if g == nil || len(g.topics) == 0 {
		return nil
	}
	words := Words(text)
	var found []string
	for _, topic := range g.topics {
		if containsPhrase(words, topic) {
			found = append(found, strings.Join(topic, " "))
		}
	}
	return found
}

// containsPhrase reports whether phrase occurs as a contiguous token
// subsequence of words.
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(words) {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(words); i++ {
		for j, p := range phrase {
			if words[i+j] != p {
				continue outer
			}
		}
		return true
	}
	return false
}
