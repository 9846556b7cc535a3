package quiz

import "github.com/ahleksu/gail-prac-app/internal/catalog"

// Current returns the question under the cursor, or nil if the list is
// empty or the cursor is out of range.
func (a *Attempt) Current() *catalog.Question {
	if a.Index < 0 || a.Index >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.Index]
}

// Toggle updates the transient selection for the current question. Single
// questions replace the sole selection; multiple questions toggle membership
// of option, preserving insertion order for display stability.
func (a *Attempt) Toggle(option string) {
	q := a.Current()
	if q == nil {
		return
	}

	if q.Type == catalog.TypeSingle {
		a.Selection = []string{option}
		return
	}

	for i, sel := range a.Selection {
		if sel == option {
			a.Selection = append(a.Selection[:i], a.Selection[i+1:]...)
			return
		}
	}
	a.Selection = append(a.Selection, option)
}

// Submit scores the transient selection against the current question and
// records the result. Resubmitting after changing the selection overwrites
// the previous record; no other question is touched.
func (a *Attempt) Submit() {
	q := a.Current()
	if q == nil {
		return
	}

	selected := make([]string, len(a.Selection))
	copy(selected, a.Selection)

	a.Answers[q.ID] = &AnswerState{
		Selected:        selected,
		IsCorrect:       isCorrect(q, selected),
		ShowExplanation: true,
	}
	a.ShowExplanation = true
}

// Next advances the cursor by one, clamped at the last question. Moving past
// the end is a no-op.
func (a *Attempt) Next() {
	if a.Index >= len(a.Questions)-1 {
		return
	}
	a.Index++
	a.restoreTransients()
}

// Back retreats the cursor by one, clamped at the first question. Moving
// before the start is a no-op.
func (a *Attempt) Back() {
	if a.Index <= 0 {
		return
	}
	a.Index--
	a.restoreTransients()
}

// Answered returns the number of questions with a recorded answer. Any
// question without one counts as skipped at finalization, regardless of
// whether it was visited.
func (a *Attempt) Answered() int {
	return len(a.Answers)
}

// restoreTransients loads the stored answer for the newly current question
// into the transient fields, so revisiting an answered question shows its
// prior selection and explanation. Unanswered questions get a blank form.
func (a *Attempt) restoreTransients() {
	q := a.Current()
	if q == nil {
		a.Selection = nil
		a.ShowExplanation = false
		return
	}
	if state, ok := a.Answers[q.ID]; ok {
		a.Selection = make([]string, len(state.Selected))
		copy(a.Selection, state.Selected)
		a.ShowExplanation = state.ShowExplanation
		return
	}
	a.Selection = nil
	a.ShowExplanation = false
}

// isCorrect scores a selection: single questions require an exact match with
// the one correct answer's text, multiple questions require set equality
// between the selection and the correct-answer texts.
func isCorrect(q *catalog.Question, selected []string) bool {
	correct := q.CorrectTexts()
	if q.Type == catalog.TypeSingle {
		return len(selected) == 1 && len(correct) == 1 && selected[0] == correct[0]
	}
	return sameSet(selected, correct)
}

// sameSet reports whether a and b contain the same elements, ignoring order.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	if len(seen) != len(b) {
		return false
	}
	for _, s := range b {
		if !seen[s] {
			return false
		}
	}
	return true
}
