package catalog

import "sort"

// TopicAll selects the whole catalog without filtering.
const TopicAll = "all"

// defaultTopics maps topic keys to the domain labels they cover. An empty
// list means "no filtering". Labels here are stored in their canonical
// (apostrophe-normalized) form; matching is case-insensitive either way.
var defaultTopics = map[string][]string{
	TopicAll:       {},
	"fundamentals": {"Fundamentals of gen AI"},
	"offerings":    {"Google Cloud's gen AI offerings"},
	"techniques":   {"Techniques to improve gen AI model output"},
	"strategies":   {"Business strategies for a successful gen AI solution"},
}

// Topics holds the topic-key → domain-label table used to filter Load calls.
type Topics struct {
	byKey map[string][]string
}

// DefaultTopics returns the built-in topic table.
func DefaultTopics() *Topics {
	return NewTopics(nil)
}

// NewTopics builds a topic table from the defaults merged with extra
// mappings (e.g. from a config file). Extra keys override defaults.
func NewTopics(extra map[string][]string) *Topics {
	byKey := make(map[string][]string, len(defaultTopics)+len(extra))
	for k, labels := range defaultTopics {
		byKey[k] = normalizeLabels(labels)
	}
	for k, labels := range extra {
		byKey[k] = normalizeLabels(labels)
	}
	return &Topics{byKey: byKey}
}

// Domains returns the domain-label filters for a topic key. An unknown key
// behaves like TopicAll: no filters, the caller gets the full catalog. An
// empty quiz from a typo'd key would be worse than an unfiltered one.
func (t *Topics) Domains(key string) []string {
	labels, ok := t.byKey[key]
	if !ok {
		return nil
	}
	return labels
}

// Keys returns all known topic keys in sorted order.
func (t *Topics) Keys() []string {
	keys := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeLabels(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = NormalizeLabel(l)
	}
	return out
}
