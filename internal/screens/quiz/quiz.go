package quiz

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	qz "github.com/ahleksu/gail-prac-app/internal/quiz"
	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/scoring"
	"github.com/ahleksu/gail-prac-app/internal/screen"
	"github.com/ahleksu/gail-prac-app/internal/screens/results"
	"github.com/ahleksu/gail-prac-app/internal/store"
	"github.com/ahleksu/gail-prac-app/internal/ui/components"
	"github.com/ahleksu/gail-prac-app/internal/ui/layout"
)

// QuizScreen runs one quiz attempt: catalog load, question navigation,
// answering, and finalization.
type QuizScreen struct {
	repo     *catalog.Repository
	results  store.ResultRepo
	topicKey string
	shuffle  bool

	attempt *qz.Attempt
	list    components.ChoiceList
	spin    spinner.Model

	loading       bool
	confirmFinish bool
	errMsg        string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. results may be nil; finalized results are then
// simply not persisted.
func New(repo *catalog.Repository, results store.ResultRepo, topicKey string, shuffle bool) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &QuizScreen{
		repo:     repo,
		results:  results,
		topicKey: topicKey,
		shuffle:  shuffle,
		spin:     sp,
		loading:  true,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, s.loadCatalog())
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmFinish {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish anyway"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.attempt != nil && s.attempt.ShowExplanation {
		return []layout.KeyHint{
			{Key: "Enter/→", Description: "Next"},
			{Key: "←", Description: "Back"},
			{Key: "F", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Check"},
		{Key: "←→", Description: "Navigate"},
		{Key: "F", Description: "Finish"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		return s.handleCatalogLoaded(msg)

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case resultSavedMsg:
		if msg.Err != nil {
			fmt.Fprintln(os.Stderr, "save result:", msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// loadCatalog is the one-shot catalog fetch. Failure surfaces immediately;
// there is no retry.
func (s *QuizScreen) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		questions, err := s.repo.Load(s.topicKey)
		return catalogLoadedMsg{Questions: questions, Err: err}
	}
}

func (s *QuizScreen) handleCatalogLoaded(msg catalogLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if len(msg.Questions) == 0 {
		s.errMsg = "no questions available for this topic"
		return s, nil
	}

	s.attempt = qz.NewAttempt(s.topicKey, msg.Questions, s.shuffle)
	s.syncChoices()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmFinish {
		switch msg.String() {
		case "y", "Y", "enter":
			s.confirmFinish = false
			return s, s.finalize()
		case "n", "N", "esc":
			s.confirmFinish = false
		}
		return s, nil
	}

	if s.attempt == nil {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		s.list.CursorUp()
	case "down", "j":
		s.list.CursorDown()
	case " ", "space":
		if !s.attempt.ShowExplanation {
			s.attempt.Toggle(s.list.CursorText())
			s.syncChoices()
		}
	case "enter":
		if s.attempt.ShowExplanation {
			return s.advance()
		}
		if len(s.attempt.Selection) > 0 {
			s.attempt.Submit()
			s.syncChoices()
		}
	case "right", "l":
		s.attempt.Next()
		s.syncChoices()
	case "left", "h":
		s.attempt.Back()
		s.syncChoices()
	case "f", "F":
		return s.requestFinish()
	}

	return s, nil
}

// advance moves on after an answered question; on the last question it rolls
// into the finish flow.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if s.attempt.Index == len(s.attempt.Questions)-1 {
		return s.requestFinish()
	}
	s.attempt.Next()
	s.syncChoices()
	return s, nil
}

// requestFinish finalizes immediately when every question is answered and
// asks for confirmation otherwise. Finalizing an incomplete attempt is
// legal; the unanswered questions become skipped.
func (s *QuizScreen) requestFinish() (screen.Screen, tea.Cmd) {
	if s.attempt == nil {
		return s, nil
	}
	if s.attempt.Answered() < len(s.attempt.Questions) {
		s.confirmFinish = true
		return s, nil
	}
	return s, s.finalize()
}

// finalize produces the result payload, kicks off a best-effort save, and
// replaces this screen with the results view so Esc cannot return into the
// finished attempt.
func (s *QuizScreen) finalize() tea.Cmd {
	res := scoring.Finalize(s.attempt)

	save := func() tea.Msg {
		if s.results == nil {
			return nil
		}
		return resultSavedMsg{Err: s.results.Save(context.Background(), res)}
	}
	replace := func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(res, s.results)}
	}
	return tea.Batch(save, replace)
}

// syncChoices rebuilds the choice list from the attempt's current question
// and transient selection.
func (s *QuizScreen) syncChoices() {
	q := s.attempt.Current()
	if q == nil {
		s.list = components.NewChoiceList(false)
		return
	}

	selected := make(map[string]bool, len(s.attempt.Selection))
	for _, sel := range s.attempt.Selection {
		selected[sel] = true
	}

	cursor := s.list.Cursor
	s.list = components.NewChoiceList(q.Type == catalog.TypeMultiple)
	s.list.Submitted = s.attempt.ShowExplanation
	for _, a := range q.Answers {
		s.list.Choices = append(s.list.Choices, components.Choice{
			Text:     a.Text,
			Selected: selected[a.Text],
			Correct:  a.IsCorrect(),
		})
	}
	if cursor < len(s.list.Choices) {
		s.list.Cursor = cursor
	}
}
