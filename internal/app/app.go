package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/router"
	"github.com/ahleksu/gail-prac-app/internal/screen"
	"github.com/ahleksu/gail-prac-app/internal/screens/home"
	"github.com/ahleksu/gail-prac-app/internal/screens/quiz"
	"github.com/ahleksu/gail-prac-app/internal/store"
	"github.com/ahleksu/gail-prac-app/internal/ui/layout"
)

// Options carries the dependencies and launch settings for the TUI.
type Options struct {
	// Repo is the question repository. Required.
	Repo *catalog.Repository

	// ResultRepo persists finalized results. Optional; nil disables
	// persistence.
	ResultRepo store.ResultRepo

	// Shuffle controls question presentation order.
	Shuffle bool

	// StartTopic, when non-empty, skips the home screen and starts a quiz
	// on that topic directly.
	StartTopic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	topic  string
	width  int
	height int
}

// newAppModel creates the root model with the initial screen.
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.StartTopic != "" {
		initial = quiz.New(opts.Repo, opts.ResultRepo, opts.StartTopic, opts.Shuffle)
	} else {
		initial = home.New(opts.Repo, opts.ResultRepo, opts.Shuffle)
	}
	return AppModel{
		router: router.New(initial),
		topic:  opts.StartTopic,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.topic, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok && provider.KeyHints() != nil {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
