package scoring

import (
	"sort"
	"time"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/quiz"
)

// ResultVersion is the current persisted-payload format version. Readers
// accept any payload with the same major version.
const ResultVersion = "v1"

// QuestionWithAnswer is the review-ready shape of one question: the catalog
// entry plus what the user actually chose. Constructed once at finalization
// and immutable afterwards.
type QuestionWithAnswer struct {
	catalog.Question

	// UserAnswer is the flat sequence of chosen answer texts, regardless of
	// question type. Empty means the question was skipped.
	UserAnswer []string `json:"userAnswer"`

	// Skipped is true iff no answer was recorded at finalization time.
	Skipped bool `json:"isSkipped"`
}

// Result is the finalization payload handed to the results and review
// screens and optionally persisted. It is self-describing: a review can be
// rebuilt from it alone, without the original attempt.
type Result struct {
	Version  string                   `json:"version"`
	ID       string                   `json:"id"`
	TopicKey string                   `json:"topicKey"`
	TakenAt  time.Time                `json:"timestamp"`
	Total    int                      `json:"total"`
	Correct  int                      `json:"correct"`
	Domains  map[string]DomainSummary `json:"domainSummary"`
	Questions []QuestionWithAnswer    `json:"questions"`
}

// Finalize closes an attempt and produces its durable result. Questions are
// sorted by original catalog ID ascending, so review order is stable no
// matter how the attempt was shuffled. Finalizing with unanswered questions
// is always legal; they are marked skipped. The confirmation prompt for an
// incomplete attempt is a presentation concern.
func Finalize(a *quiz.Attempt) *Result {
	summary := Summarize(a.Questions, a.Answers)

	qwa := make([]QuestionWithAnswer, 0, len(a.Questions))
	for _, q := range a.Questions {
		entry := QuestionWithAnswer{Question: q}
		if state, ok := a.Answers[q.ID]; ok {
			entry.UserAnswer = append([]string(nil), state.Selected...)
		} else {
			entry.Skipped = true
		}
		qwa = append(qwa, entry)
	}
	sort.Slice(qwa, func(i, j int) bool { return qwa[i].ID < qwa[j].ID })

	return &Result{
		Version:   ResultVersion,
		ID:        a.ID,
		TopicKey:  a.TopicKey,
		TakenAt:   time.Now(),
		Total:     summary.Total,
		Correct:   summary.Correct,
		Domains:   summary.Domains,
		Questions: qwa,
	}
}
