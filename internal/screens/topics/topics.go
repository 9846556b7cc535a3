package topics

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/screen"
	"github.com/ahleksu/gail-prac-app/internal/screens/quiz"
	"github.com/ahleksu/gail-prac-app/internal/store"
	"github.com/ahleksu/gail-prac-app/internal/ui/components"
	"github.com/ahleksu/gail-prac-app/internal/ui/theme"
)

// TopicsScreen lets the user pick a topic before starting a quiz.
type TopicsScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates a TopicsScreen listing every configured topic key.
func New(repo *catalog.Repository, results store.ResultRepo, shuffle bool) *TopicsScreen {
	var items []components.MenuItem
	for _, key := range repo.Topics().Keys() {
		key := key
		detail := "every domain"
		if domains := repo.Topics().Domains(key); len(domains) > 0 {
			detail = strings.Join(domains, "; ")
		}
		items = append(items, components.MenuItem{
			Label:  key,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quiz.New(repo, results, key, shuffle),
					}
				}
			},
		})
	}
	return &TopicsScreen{menu: components.NewMenu(items)}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	return "Choose a Topic"
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TopicsScreen) View(width, height int) string {
	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick the topic you want to practice.")
	return "\n" + header + "\n\n" + s.menu.View()
}
