package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/review"
	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/scoring"
	"github.com/ahleksu/gail-prac-app/internal/screen"
	"github.com/ahleksu/gail-prac-app/internal/ui/layout"
	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

// ReviewScreen walks through a finalized attempt question by question, with
// an optional domain filter. Correctness is rederived by the review
// projection; the screen never trusts flags stored in the payload.
type ReviewScreen struct {
	all     []review.ReviewedQuestion
	visible []review.ReviewedQuestion
	domains []string

	domainIdx int // index into domains; 0 is the AllDomains sentinel
	pos       int // index into visible
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over finalized question records.
func New(records []scoring.QuestionWithAnswer) *ReviewScreen {
	all := review.Project(records)
	return &ReviewScreen{
		all:     all,
		visible: review.FilterDomain(all, review.AllDomains),
		domains: review.Domains(all),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "D", Description: "Domain filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "right", "l", "n":
		if s.pos < len(s.visible)-1 {
			s.pos++
		}
	case "left", "h", "p":
		if s.pos > 0 {
			s.pos--
		}
	case "d", "D", "tab":
		s.cycleDomain()
	}
	return s, nil
}

// cycleDomain advances the domain filter and recomputes the visible subset.
// The underlying record list is never mutated.
func (s *ReviewScreen) cycleDomain() {
	if len(s.domains) == 0 {
		return
	}
	s.domainIdx = (s.domainIdx + 1) % len(s.domains)
	s.visible = review.FilterDomain(s.all, s.domains[s.domainIdx])
	s.pos = 0
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.visible) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNothing to review for this filter.")
	}

	rq := s.visible[s.pos]
	var b strings.Builder

	filterLabel := s.domains[s.domainIdx]
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + filterLabel)
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", s.pos+1, len(s.visible)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(s.renderBadge(rq))
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(maxInt(width-6, 20))

	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render("  " + rq.Text))
	b.WriteString("\n\n")

	if len(rq.UserAnswer) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Your answer: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(rq.UserAnswer, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Correct answer: "))
	b.WriteString(theme.Correct.Render(strings.Join(rq.CorrectTexts(), ", ")))
	b.WriteString("\n\n")

	for _, a := range rq.Answers {
		if a.IsCorrect() && a.Explanation != "" {
			b.WriteString(wrap.Foreground(theme.TextDim).Render("  " + a.Explanation))
			b.WriteString("\n")
		}
	}

	if rq.Resource != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Learn more: " + rq.Resource))
	}

	return b.String()
}

func (s *ReviewScreen) renderBadge(rq review.ReviewedQuestion) string {
	switch {
	case rq.Skipped:
		return theme.Skipped.Render("  ○ Skipped")
	case rq.Correct:
		return theme.Correct.Render("  ✓ Correct")
	default:
		return theme.Incorrect.Render("  ✗ Incorrect")
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
