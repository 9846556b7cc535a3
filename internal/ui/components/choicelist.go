package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

// Choice is one renderable answer option.
type Choice struct {
	Text     string
	Selected bool // part of the user's current selection
	Correct  bool // marked correct in the catalog; only shown after submit
}

// ChoiceList renders a question's answer options. Before submission it shows
// radio (single) or checkbox (multiple) markers with a highlight cursor;
// after submission it colors options by correctness.
type ChoiceList struct {
	Choices   []Choice
	Cursor    int
	Multiple  bool
	Submitted bool
}

// NewChoiceList creates a choice list for the given options.
func NewChoiceList(multiple bool) ChoiceList {
	return ChoiceList{Multiple: multiple}
}

// CursorUp moves the highlight up one option, stopping at the top.
func (c *ChoiceList) CursorUp() {
	if c.Cursor > 0 {
		c.Cursor--
	}
}

// CursorDown moves the highlight down one option, stopping at the bottom.
func (c *ChoiceList) CursorDown() {
	if c.Cursor < len(c.Choices)-1 {
		c.Cursor++
	}
}

// CursorText returns the text of the highlighted option, or "" if none.
func (c *ChoiceList) CursorText() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Cursor].Text
}

// View renders the list.
func (c ChoiceList) View() string {
	var s string
	for i, choice := range c.Choices {
		marker := c.marker(choice)

		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, choice.Text)

		switch {
		case c.Submitted && choice.Correct:
			s += theme.Correct.Render(line)
		case c.Submitted && choice.Selected:
			s += theme.Incorrect.Render(line)
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		case i == c.Cursor:
			s += theme.Selected.Render(line)
		case choice.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
		default:
			s += theme.Unselected.Render(line)
		}
		s += "\n"
	}
	return s
}

// marker returns the radio/checkbox glyph for a choice.
func (c ChoiceList) marker(choice Choice) string {
	if c.Multiple {
		if choice.Selected {
			return "[x]"
		}
		return "[ ]"
	}
	if choice.Selected {
		return "(•)"
	}
	return "( )"
}
