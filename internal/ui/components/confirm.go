package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

// RenderConfirm renders a centered yes/no confirmation dialog.
func RenderConfirm(prompt string, width, height int) string {
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt) +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("[Y]es    [N]o"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
