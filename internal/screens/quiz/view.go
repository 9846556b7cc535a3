package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/ui/components"
	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg + "\n\nPress Esc to go back.")
	}
	if s.loading || s.attempt == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.spin.View() + " Loading questions...")
	}
	if s.confirmFinish {
		unanswered := len(s.attempt.Questions) - s.attempt.Answered()
		prompt := fmt.Sprintf("%d question(s) unanswered.\nFinish and mark them skipped?", unanswered)
		return components.RenderConfirm(prompt, width, height)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	att := s.attempt
	q := att.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Domain))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d   Answered %d",
			att.Index+1, len(att.Questions), att.Answered()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Text))
	b.WriteString("\n")
	if q.Type == catalog.TypeMultiple {
		b.WriteString(theme.Hint.Render("  Select all that apply."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.list.View())

	if att.ShowExplanation {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width, q.ID))
	}

	return b.String()
}

// renderFeedback shows correctness and the correct answers' explanations
// after a submission.
func (s *QuizScreen) renderFeedback(width, questionID int) string {
	state := s.attempt.Answers[questionID]
	q := s.attempt.Current()
	if state == nil || q == nil {
		return ""
	}

	var b strings.Builder
	if state.IsCorrect {
		b.WriteString(theme.Correct.Render("  ✓ Correct"))
	} else {
		b.WriteString(theme.Incorrect.Render("  ✗ Incorrect"))
	}
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(max(width-6, 20)).Foreground(theme.TextDim)
	for _, a := range q.Answers {
		if a.IsCorrect() && a.Explanation != "" {
			b.WriteString(wrap.Render("  " + a.Explanation))
			b.WriteString("\n")
		}
	}

	if q.Resource != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Learn more: " + q.Resource))
		b.WriteString("\n")
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
