// Package app wires the screen router into the Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/screens/home"
	"github.com/dakia/mathquiz/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   screens.Deps
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps screens.Deps) AppModel {
	deps = deps.WithDefaults()
	return AppModel{
		router: router.New(home.New(deps)),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Leaving any flow abandons the quiz in progress.
			if m.router.Depth() > 1 {
				m.deps.Session.Reset()
				return m, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render draws the frame for the current size, or nothing before the first
// resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	l := m.deps.L
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(l, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if !m.deps.AIAvailable() {
		status = l.T(i18n.AIDisabledBadge)
	}
	header := layout.RenderHeader(l.T(i18n.AppName), title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	l := m.deps.L
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: l.T(i18n.KeyBack)},
			{Key: "Ctrl+C", Description: l.T(i18n.KeyQuit)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: l.T(i18n.KeyNavigate)},
		{Key: "Enter", Description: l.T(i18n.KeySelect)},
		{Key: "Ctrl+C", Description: l.T(i18n.KeyQuit)},
	}
}

// Run starts the Bubble Tea program.
func Run(deps screens.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
