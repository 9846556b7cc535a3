package catalog

import "strings"

// QuestionType distinguishes single-select from multi-select questions.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
)

// StatusCorrect marks an answer as correct. Any other status string means
// not-correct; the catalog data still carries the legacy spelling "wrong"
// alongside "incorrect".
const StatusCorrect = "correct"

// Answer is one selectable option of a question.
type Answer struct {
	Text        string `json:"text"`
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
}

// IsCorrect reports whether this answer is marked correct.
func (a Answer) IsCorrect() bool {
	return a.Status == StatusCorrect
}

// Question is one immutable catalog entry.
type Question struct {
	ID       int          `json:"id"`
	Text     string       `json:"question"`
	Domain   string       `json:"domain"`
	Resource string       `json:"resource,omitempty"`
	Type     QuestionType `json:"type"`
	Answers  []Answer     `json:"answers"`
}

// CorrectTexts returns the texts of all answers marked correct, in catalog
// order. A well-formed single question yields exactly one entry.
func (q Question) CorrectTexts() []string {
	var texts []string
	for _, a := range q.Answers {
		if a.IsCorrect() {
			texts = append(texts, a.Text)
		}
	}
	return texts
}

// apostropheReplacer maps the curly apostrophe variants that appear in the
// catalog's domain labels onto the plain ASCII form.
var apostropheReplacer = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"ʼ", "'", // modifier letter apostrophe
)

// NormalizeLabel canonicalizes a domain label's punctuation while preserving
// case. Applied to every domain label at ingestion so that labels differing
// only in apostrophe form compare equal everywhere downstream.
func NormalizeLabel(label string) string {
	return apostropheReplacer.Replace(strings.TrimSpace(label))
}

// labelKey is the comparison form of a domain label: normalized punctuation,
// folded case.
func labelKey(label string) string {
	return strings.ToLower(NormalizeLabel(label))
}

// SameDomain reports whether two domain labels refer to the same grouping,
// ignoring case and apostrophe form.
func SameDomain(a, b string) bool {
	return labelKey(a) == labelKey(b)
}
