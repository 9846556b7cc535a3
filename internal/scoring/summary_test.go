package scoring

import (
	"testing"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/quiz"
)

func twoDomainQuestions() []catalog.Question {
	return []catalog.Question{
		{
			ID:     1,
			Text:   "Pick X",
			Domain: "A",
			Type:   catalog.TypeSingle,
			Answers: []catalog.Answer{
				{Text: "X", Status: "correct"},
				{Text: "W", Status: "wrong"},
			},
		},
		{
			ID:     2,
			Text:   "Pick Y and Z",
			Domain: "B",
			Type:   catalog.TypeMultiple,
			Answers: []catalog.Answer{
				{Text: "Y", Status: "correct"},
				{Text: "Z", Status: "correct"},
				{Text: "W", Status: "wrong"},
			},
		},
	}
}

func TestSummarize_AnsweredAndSkipped(t *testing.T) {
	questions := twoDomainQuestions()
	answers := map[int]*quiz.AnswerState{
		1: {Selected: []string{"X"}, IsCorrect: true},
	}

	s := Summarize(questions, answers)

	if s.Total != 2 {
		t.Errorf("Total = %d, want 2", s.Total)
	}
	if s.Correct != 1 {
		t.Errorf("Correct = %d, want 1", s.Correct)
	}

	a := s.Domains["A"]
	if a.Correct != 1 || a.Total != 1 || a.Skipped != 0 {
		t.Errorf("domain A = %+v, want {1 1 0}", a)
	}
	b := s.Domains["B"]
	if b.Correct != 0 || b.Total != 1 || b.Skipped != 1 {
		t.Errorf("domain B = %+v, want {0 1 1}", b)
	}
}

func TestSummarize_IncorrectCountsNeitherCorrectNorSkipped(t *testing.T) {
	questions := twoDomainQuestions()
	answers := map[int]*quiz.AnswerState{
		1: {Selected: []string{"W"}, IsCorrect: false},
	}

	s := Summarize(questions, answers)

	a := s.Domains["A"]
	if a.Correct != 0 || a.Skipped != 0 || a.Total != 1 {
		t.Errorf("domain A = %+v, want {0 1 0}", a)
	}
	if got := a.Incorrect(); got != 1 {
		t.Errorf("Incorrect() = %d, want 1", got)
	}
}

func TestSummarize_DomainInvariant(t *testing.T) {
	questions := twoDomainQuestions()

	// Every combination of answered/unanswered must keep
	// correct + skipped <= total per domain.
	answerSets := []map[int]*quiz.AnswerState{
		{},
		{1: {Selected: []string{"X"}, IsCorrect: true}},
		{1: {Selected: []string{"W"}, IsCorrect: false}},
		{
			1: {Selected: []string{"X"}, IsCorrect: true},
			2: {Selected: []string{"Y", "Z"}, IsCorrect: true},
		},
	}

	for i, answers := range answerSets {
		s := Summarize(questions, answers)
		for domain, d := range s.Domains {
			if d.Correct+d.Skipped > d.Total {
				t.Errorf("set %d domain %s: correct %d + skipped %d > total %d",
					i, domain, d.Correct, d.Skipped, d.Total)
			}
			if d.Incorrect() < 0 {
				t.Errorf("set %d domain %s: negative incorrect count", i, domain)
			}
		}
	}
}
