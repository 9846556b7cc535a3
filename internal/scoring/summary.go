package scoring

import (
	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/quiz"
)

// DomainSummary aggregates one domain's results. Invariant:
// Correct + Skipped <= Total.
type DomainSummary struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Skipped int `json:"skipped"`
}

// Incorrect is the count of questions answered but answered wrong. It is
// derived here, in one place, rather than stored.
func (d DomainSummary) Incorrect() int {
	return d.Total - d.Correct - d.Skipped
}

// Summary holds overall and per-domain counts for a question set at a point
// in time.
type Summary struct {
	Total   int                      `json:"total"`
	Correct int                      `json:"correct"`
	Domains map[string]DomainSummary `json:"domainSummary"`
}

// Summarize derives counts from a question set and its answer records. Safe
// to call at any time during an attempt; nothing is cached or stored.
func Summarize(questions []catalog.Question, answers map[int]*quiz.AnswerState) Summary {
	s := Summary{
		Total:   len(questions),
		Domains: make(map[string]DomainSummary, 4),
	}

	for _, q := range questions {
		d := s.Domains[q.Domain]
		d.Total++

		state, answered := answers[q.ID]
		switch {
		case !answered:
			d.Skipped++
		case state.IsCorrect:
			d.Correct++
			s.Correct++
		}
		// Answered-but-wrong increments neither; it is recoverable as
		// DomainSummary.Incorrect().

		s.Domains[q.Domain] = d
	}

	return s
}
