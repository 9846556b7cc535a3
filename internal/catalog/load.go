package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Embedded default catalog, used when no --catalog override is given.
//
//go:embed catalog.json
var embeddedCatalog []byte

// ErrCatalogUnavailable indicates the backing catalog could not be read or
// parsed. There is no retry; callers decide whether to show an error state.
var ErrCatalogUnavailable = errors.New("question catalog unavailable")

// Repository loads the question catalog and filters it by topic key.
type Repository struct {
	path   string // optional file override; empty means embedded catalog
	topics *Topics
}

// NewRepository creates a Repository. path may be empty to use the embedded
// catalog; topics may be nil to use the default topic table.
func NewRepository(path string, topics *Topics) *Repository {
	if topics == nil {
		topics = DefaultTopics()
	}
	return &Repository{path: path, topics: topics}
}

// Topics returns the repository's topic table.
func (r *Repository) Topics() *Topics {
	return r.topics
}

// Load returns the questions selected by topicKey, in catalog order. The
// returned slice is freshly allocated on every call; mutating it never
// affects the source. A key with no configured filters (including unknown
// keys) returns every question.
func (r *Repository) Load(topicKey string) ([]Question, error) {
	raw := embeddedCatalog
	if r.path != "" {
		b, err := os.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrCatalogUnavailable, r.path, err)
		}
		raw = b
	}

	if err := validateCatalog(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrCatalogUnavailable, err)
	}

	// Punctuation-normalize domain labels once, at ingestion.
	for i := range questions {
		questions[i].Domain = NormalizeLabel(questions[i].Domain)
	}

	filters := r.topics.Domains(topicKey)
	if len(filters) == 0 {
		return questions, nil
	}

	var selected []Question
	for _, q := range questions {
		for _, label := range filters {
			if SameDomain(q.Domain, label) {
				selected = append(selected, q)
				break
			}
		}
	}
	return selected, nil
}
