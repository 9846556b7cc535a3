package review

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	rev "github.com/ahleksu/gail-prac-app/internal/review"
	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/scoring"
)

func reviewRecords() []scoring.QuestionWithAnswer {
	return []scoring.QuestionWithAnswer{
		{
			Question: catalog.Question{
				ID:     1,
				Text:   "Pick X",
				Domain: "A",
				Type:   catalog.TypeSingle,
				Answers: []catalog.Answer{
					{Text: "X", Status: "correct", Explanation: "x is right"},
					{Text: "W", Status: "wrong"},
				},
			},
			UserAnswer: []string{"X"},
		},
		{
			Question: catalog.Question{
				ID:     2,
				Text:   "Pick Y",
				Domain: "B",
				Type:   catalog.TypeSingle,
				Answers: []catalog.Answer{
					{Text: "Y", Status: "correct"},
					{Text: "W", Status: "wrong"},
				},
			},
			UserAnswer: []string{"W"},
		},
		{
			Question: catalog.Question{
				ID:     3,
				Text:   "Pick Q",
				Domain: "A",
				Type:   catalog.TypeSingle,
				Answers: []catalog.Answer{
					{Text: "Q", Status: "correct"},
					{Text: "R", Status: "wrong"},
				},
			},
		},
	}
}

func TestReviewScreen_NavigationClamps(t *testing.T) {
	s := New(reviewRecords())

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.pos != 0 {
		t.Errorf("left at start moved to %d", s.pos)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.pos != 2 {
		t.Errorf("right past end moved to %d", s.pos)
	}
}

func TestReviewScreen_DomainFilterCycles(t *testing.T) {
	s := New(reviewRecords())
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight}) // pos 1

	s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})

	if s.domains[s.domainIdx] != "A" {
		t.Errorf("filter = %q, want A after one cycle", s.domains[s.domainIdx])
	}
	if len(s.visible) != 2 {
		t.Errorf("visible = %d questions, want 2 in domain A", len(s.visible))
	}
	if s.pos != 0 {
		t.Errorf("pos = %d, want reset to 0 on filter change", s.pos)
	}

	// Cycling through every filter returns to the sentinel.
	s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if s.domains[s.domainIdx] != rev.AllDomains {
		t.Errorf("filter = %q, want the all-domains sentinel", s.domains[s.domainIdx])
	}
	if len(s.visible) != 3 {
		t.Errorf("visible = %d questions, want all 3", len(s.visible))
	}
}

func TestReviewScreen_ViewShowsBadgeAndAnswers(t *testing.T) {
	s := New(reviewRecords())

	view := s.View(80, 24)
	if !strings.Contains(view, "Correct") {
		t.Error("view missing the correctness badge")
	}
	if !strings.Contains(view, "Pick X") {
		t.Error("view missing the question text")
	}
	if !strings.Contains(view, "x is right") {
		t.Error("view missing the explanation")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !strings.Contains(s.View(80, 24), "Incorrect") {
		t.Error("wrong answer missing the incorrect badge")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !strings.Contains(s.View(80, 24), "Skipped") {
		t.Error("unanswered question missing the skipped badge")
	}
}

func TestReviewScreen_EscPops(t *testing.T) {
	s := New(reviewRecords())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}
