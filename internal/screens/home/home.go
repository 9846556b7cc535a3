package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/screen"
	"github.com/ahleksu/gail-prac-app/internal/screens/results"
	"github.com/ahleksu/gail-prac-app/internal/screens/topics"
	"github.com/ahleksu/gail-prac-app/internal/store"
	"github.com/ahleksu/gail-prac-app/internal/ui/components"
	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

const banner = `
   ____    _    ___ _       ____
  / ___|  / \  |_ _| |     |  _ \ _ __ __ _  ___
 | |  _  / _ \  | || |     | |_) | '__/ _` + "`" + ` |/ __|
 | |_| |/ ___ \ | || |___  |  __/| | | (_| | (__
  \____/_/   \_\___|_____| |_|   |_|  \__,_|\___|
`

// HomeScreen is the entry screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the catalog repository and result store.
// resultRepo may be nil when the store failed to open; the last-result entry
// then degrades to "nothing to show" inside the results screen.
func New(repo *catalog.Repository, resultRepo store.ResultRepo, shuffle bool) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(repo, resultRepo, shuffle)}
			}
		}},
		{Label: "LAST RESULT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(nil, resultRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(banner))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Generative AI Leader practice quizzes, in your terminal."))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return b.String()
}
