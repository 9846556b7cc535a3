package scoring

import (
	"testing"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/quiz"
)

func TestFinalize_SortsByQuestionID(t *testing.T) {
	questions := twoDomainQuestions()
	// Present the questions in reverse, as a shuffle might have.
	reversed := []catalog.Question{questions[1], questions[0]}
	att := quiz.NewAttempt("all", reversed, false)

	res := Finalize(att)

	for i := 1; i < len(res.Questions); i++ {
		if res.Questions[i].ID <= res.Questions[i-1].ID {
			t.Fatalf("result not sorted by ID: %d after %d",
				res.Questions[i].ID, res.Questions[i-1].ID)
		}
	}
}

func TestFinalize_MarksUnansweredSkipped(t *testing.T) {
	att := quiz.NewAttempt("all", twoDomainQuestions(), false)
	att.Toggle("X")
	att.Submit()

	res := Finalize(att)

	if res.Questions[0].Skipped {
		t.Error("answered question 1 marked skipped")
	}
	if !res.Questions[1].Skipped {
		t.Error("unanswered question 2 not marked skipped")
	}
	if len(res.Questions[1].UserAnswer) != 0 {
		t.Errorf("skipped question carries an answer: %v", res.Questions[1].UserAnswer)
	}
}

func TestFinalize_PayloadFields(t *testing.T) {
	att := quiz.NewAttempt("offerings", twoDomainQuestions(), false)
	att.Toggle("X")
	att.Submit()

	res := Finalize(att)

	if res.Version != ResultVersion {
		t.Errorf("Version = %q, want %q", res.Version, ResultVersion)
	}
	if res.ID != att.ID {
		t.Errorf("ID = %q, want attempt ID %q", res.ID, att.ID)
	}
	if res.TopicKey != "offerings" {
		t.Errorf("TopicKey = %q, want offerings", res.TopicKey)
	}
	if res.TakenAt.IsZero() {
		t.Error("TakenAt not set")
	}
	if res.Total != 2 || res.Correct != 1 {
		t.Errorf("Total/Correct = %d/%d, want 2/1", res.Total, res.Correct)
	}
	if len(res.Domains) != 2 {
		t.Errorf("Domains has %d entries, want 2", len(res.Domains))
	}
}

func TestFinalize_UserAnswerIsACopy(t *testing.T) {
	att := quiz.NewAttempt("all", twoDomainQuestions(), false)
	att.Toggle("X")
	att.Submit()

	res := Finalize(att)
	att.Answers[1].Selected[0] = "tampered"

	if res.Questions[0].UserAnswer[0] != "X" {
		t.Error("result shares backing storage with the attempt's answer record")
	}
}
