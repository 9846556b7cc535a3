package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
)

// AnswerState records what the user submitted for one question. It is
// created on the first Submit for a question, overwritten on resubmit, and
// never deleted while the attempt lives.
type AnswerState struct {
	// Selected holds the chosen answer texts in insertion order. Single
	// questions have at most one element.
	Selected []string

	// IsCorrect is computed at the moment of submission, not re-derived.
	IsCorrect bool

	// ShowExplanation is true once the question has been submitted.
	ShowExplanation bool
}

// Attempt is the mutable state of one in-progress quiz run. It owns the
// (possibly shuffled) question order, the cursor, and all answer records.
// Construct with NewAttempt; pass by pointer into every operation.
type Attempt struct {
	// ID is the UUID for this attempt.
	ID string

	// TopicKey selected the question set.
	TopicKey string

	// Questions is the presentation order for this attempt.
	Questions []catalog.Question

	// Index is the zero-based cursor into Questions.
	Index int

	// Answers maps question ID to its recorded answer.
	Answers map[int]*AnswerState

	// Selection holds the not-yet-submitted choices for the current
	// question. Restored from Answers on navigation, cleared otherwise.
	Selection []string

	// ShowExplanation mirrors the current question's submitted state.
	ShowExplanation bool

	// StartTime is when the attempt began.
	StartTime time.Time
}

// NewAttempt creates an attempt over the given questions. When shuffle is
// true the presentation order is a fresh random permutation; otherwise
// catalog order is preserved exactly.
func NewAttempt(topicKey string, questions []catalog.Question, shuffle bool) *Attempt {
	ordered := questions
	if shuffle {
		ordered = Shuffle(questions)
	}
	return &Attempt{
		ID:        uuid.New().String(),
		TopicKey:  topicKey,
		Questions: ordered,
		Answers:   make(map[int]*AnswerState),
		StartTime: time.Now(),
	}
}
