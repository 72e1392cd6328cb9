// Package home is the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/screens/create"
	"github.com/dakia/mathquiz/internal/screens/history"
	"github.com/dakia/mathquiz/internal/session"
	"github.com/dakia/mathquiz/internal/store"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/layout"
)

type lastResult struct {
	title   string
	score   float64
	correct int
	total   int
}

type lastResultMsg struct {
	last *lastResult
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps screens.Deps
	menu components.Menu
	last *lastResult
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps screens.Deps) *HomeScreen {
	deps = deps.WithDefaults()
	l := deps.L
	h := &HomeScreen{deps: deps}

	aiLabel := l.T(i18n.MenuAICreate)
	uploadLabel := l.T(i18n.MenuUpload)
	if !deps.AIAvailable() {
		aiLabel += " " + l.T(i18n.AIDisabledBadge)
		uploadLabel += " " + l.T(i18n.AIDisabledBadge)
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: aiLabel, Hint: l.T(i18n.HintAICreate), Action: h.open(session.ModeCreatingByAI)},
		{Label: l.T(i18n.MenuManual), Hint: l.T(i18n.HintManual), Action: h.open(session.ModeCreatingManually)},
		{Label: uploadLabel, Hint: l.T(i18n.HintUpload), Action: h.open(session.ModeCreatingByUpload)},
		{Label: l.T(i18n.MenuHistory), Hint: l.T(i18n.HintHistory), Action: func() tea.Cmd {
			next := history.New(deps)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: l.T(i18n.MenuExit), Hint: l.T(i18n.HintExit), Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

// open selects a creation mode and pushes its screen.
func (h *HomeScreen) open(mode session.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		if err := h.deps.Session.Select(mode); err != nil {
			h.deps.Logger.Warn("cannot open creator", zap.Stringer("mode", mode), zap.Error(err))
			return nil
		}
		var next screen.Screen
		switch mode {
		case session.ModeCreatingByAI:
			next = create.NewAI(h.deps)
		case session.ModeCreatingManually:
			next = create.NewManual(h.deps)
		default:
			next = create.NewUpload(h.deps)
		}
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLast()
}

// Resume refreshes the last score after returning from a quiz.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadLast()
}

func (h *HomeScreen) loadLast() tea.Cmd {
	repo := h.deps.Results
	if repo == nil {
		return nil
	}
	logger := h.deps.Logger
	return func() tea.Msg {
		recs, err := repo.ListResults(context.Background(), store.QueryOpts{Limit: 1})
		if err != nil {
			logger.Warn("failed to load last result", zap.Error(err))
			return lastResultMsg{}
		}
		if len(recs) == 0 {
			return lastResultMsg{}
		}
		r := recs[0]
		return lastResultMsg{last: &lastResult{title: r.Title, score: r.Score, correct: r.Correct, total: r.Total}}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(lastResultMsg); ok {
		h.last = m.last
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return h.deps.L.T(i18n.AppName)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	l := h.deps.L
	return []layout.KeyHint{
		{Key: "↑↓", Description: l.T(i18n.KeyNavigate)},
		{Key: "Enter", Description: l.T(i18n.KeySelect)},
		{Key: "Ctrl+C", Description: l.T(i18n.KeyQuit)},
	}
}

func (h *HomeScreen) View(width, height int) string {
	l := h.deps.L
	compact := layout.IsCompactHeight(height+6) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(l, cw)}

	if !compact {
		var score float64
		if h.last != nil {
			score = h.last.score
		}
		mascot := RenderMascot(mascotFor(h.deps.AIAvailable(), score, h.last != nil))
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, mascot))
	}
	if !h.deps.AIAvailable() {
		sections = append(sections, renderAIBanner(l, cw))
	}
	if stats := renderStatsBar(l, h.last, cw); stats != "" && !compact {
		sections = append(sections, stats)
	}

	var menu string
	if compact {
		menu = h.menu.CompactView()
	} else {
		menu = h.menu.View(buttonWidth)
	}
	sections = append(sections,
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, menu),
		renderHint(h.menu.SelectedItem().Hint, cw),
	)

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
