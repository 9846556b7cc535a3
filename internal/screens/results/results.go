package results

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/scoring"
	"github.com/ahleksu/gail-prac-app/internal/screen"
	"github.com/ahleksu/gail-prac-app/internal/screens/review"
	"github.com/ahleksu/gail-prac-app/internal/store"
	"github.com/ahleksu/gail-prac-app/internal/ui/components"
	"github.com/ahleksu/gail-prac-app/internal/ui/layout"
	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

// resultLoadedMsg carries the latest stored result, fetched when the screen
// was opened without a just-finished attempt.
type resultLoadedMsg struct {
	Result *scoring.Result
	Err    error
}

// ResultsScreen shows a finalized result: totals, accuracy, and the
// per-domain breakdown.
type ResultsScreen struct {
	result  *scoring.Result
	repo    store.ResultRepo
	loaded  bool
	loadErr string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. result may be nil, in which case the latest
// stored result is loaded on Init; if none exists the screen shows "nothing
// to show" rather than an error.
func New(result *scoring.Result, repo store.ResultRepo) *ResultsScreen {
	return &ResultsScreen{result: result, repo: repo, loaded: result != nil}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.result != nil || s.repo == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		res, err := s.repo.Latest(context.Background())
		return resultLoadedMsg{Result: res, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.result == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			// Degrade to "no persisted result".
			s.loadErr = msg.Err.Error()
			return s, nil
		}
		s.result = msg.Result
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			if s.result != nil {
				rev := review.New(s.result.Questions)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: rev} }
			}
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if !s.loaded {
		return ""
	}
	if s.result == nil {
		msg := "No results to show yet.\n\nFinish a quiz first."
		if s.loadErr != "" {
			msg += "\n\n" + theme.Hint.Render(s.loadErr)
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + msg)
	}

	res := s.result
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Taken %s   Topic: %s",
			res.TakenAt.Format("2006-01-02 15:04"), res.TopicKey)))
	b.WriteString("\n\n")

	var accuracy float64
	if res.Total > 0 {
		accuracy = float64(res.Correct) / float64(res.Total)
	}
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Score: %.0f%%",
		res.Total, res.Correct, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Domains")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, domain := range sortedDomains(res.Domains) {
		d := res.Domains[domain]
		var pct float64
		if d.Total > 0 {
			pct = float64(d.Correct) / float64(d.Total)
		}

		bar := components.NewProgressBar("", pct, true, min(width/3, 40))
		counts := fmt.Sprintf("%d/%d correct", d.Correct, d.Total)
		if d.Skipped > 0 {
			counts += fmt.Sprintf(", %d skipped", d.Skipped)
		}

		b.WriteString(fmt.Sprintf("  %s\n  %s  %s\n\n",
			lipgloss.NewStyle().Foreground(theme.Text).Render(domain),
			bar.View(),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts)))
	}

	return b.String()
}

// sortedDomains returns domain labels in a stable alphabetical order.
func sortedDomains(domains map[string]scoring.DomainSummary) []string {
	labels := make([]string, 0, len(domains))
	for d := range domains {
		labels = append(labels, d)
	}
	sort.Strings(labels)
	return labels
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
