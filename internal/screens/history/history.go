// Package history lists past quiz results from the store.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/store"
	"github.com/dakia/mathquiz/internal/ui/layout"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

// Limit is the number of results loaded.
const Limit = 50

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

type detailLoadedMsg struct {
	ID     int
	Record *store.ResultRecord
	Err    error
}

// HistoryScreen displays past results. Enter expands a result into its
// per-question answers.
type HistoryScreen struct {
	deps     screens.Deps
	results  []store.ResultRecord
	details  map[int]*store.ResultRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(deps screens.Deps) *HistoryScreen {
	return &HistoryScreen{
		deps:     deps.WithDefaults(),
		details:  make(map[int]*store.ResultRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.deps.Results
	if repo == nil {
		s.loaded = true
		s.errMsg = s.deps.L.T(i18n.ErrStoreUnavailable)
		return nil
	}
	return func() tea.Msg {
		results, err := repo.ListResults(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return s.deps.L.T(i18n.ScreenHistory)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	l := s.deps.L
	return []layout.KeyHint{
		{Key: "Enter", Description: l.T(i18n.ReviewHeading)},
		{Key: "↑↓", Description: l.T(i18n.KeyNavigate)},
		{Key: "Esc", Description: l.T(i18n.KeyBack)},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case detailLoadedMsg:
		if msg.Err == nil && msg.Record != nil {
			s.details[msg.ID] = msg.Record
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.results) {
				s.expanded[s.selected] = !s.expanded[s.selected]
				return s, s.loadDetail(s.results[s.selected].ID)
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadDetail(id int) tea.Cmd {
	if _, ok := s.details[id]; ok || s.deps.Results == nil {
		return nil
	}
	repo := s.deps.Results
	return func() tea.Msg {
		rec, err := repo.GetResult(context.Background(), id)
		return detailLoadedMsg{ID: id, Record: rec, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	l := s.deps.L
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).Render("\n\n" + l.T(i18n.HistoryLoading))
	}
	if len(s.results) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).Render("\n\n" + l.T(i18n.HistoryEmpty))
	}

	var lines screens.Lines
	lines.Add("")
	focusLine := 0
	for i, r := range s.results {
		if i == s.selected {
			focusLine = len(lines)
		}
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s  %-8s  %-32s  %d/%d  %.1f/10",
			prefix,
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			quiz.Grade(r.Grade).Label(l),
			truncate(r.Title, 32),
			r.Correct, r.Total, r.Score,
		)
		lines.Add(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))

		if s.expanded[i] {
			lines.Add(s.renderDetail(r.ID, width))
		}
	}
	return screens.Scroll(lines, focusLine, width, height)
}

func (s *HistoryScreen) renderDetail(id, width int) string {
	l := s.deps.L
	rec, ok := s.details[id]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Italic(true).Render(l.T(i18n.HistoryLoading)))
	}

	var b strings.Builder
	for _, a := range rec.Answers {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		answer := l.T(i18n.BlankAnswer)
		if a.UserAnswer != nil && strings.TrimSpace(*a.UserAnswer) != "" {
			answer = *a.UserAnswer
		}
		line := fmt.Sprintf("    %s %d. %s  %s %s  %s %s",
			mark, a.QuestionID, truncate(a.Text, 40),
			l.T(i18n.YourAnswer), answer,
			l.T(i18n.CorrectAnswer), a.CorrectAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(line)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
