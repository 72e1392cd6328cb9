// Package results shows the score card after submission.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/store"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/layout"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

type savedMsg struct {
	id  int
	err error
}

// ResultsScreen renders the score, the correct/wrong bar and a review of
// every question.
type ResultsScreen struct {
	deps   screens.Deps
	result *quiz.Result
	offset int
	saved  bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for res.
func New(deps screens.Deps, res *quiz.Result) *ResultsScreen {
	return &ResultsScreen{deps: deps.WithDefaults(), result: res}
}

// Init saves the result to history when a store is configured.
func (s *ResultsScreen) Init() tea.Cmd {
	repo := s.deps.Results
	if repo == nil || s.result == nil || s.result.Quiz == nil {
		return nil
	}
	rec := store.NewResultRecord(s.result)
	ctx := s.deps.Context()
	logger := s.deps.Logger
	return func() tea.Msg {
		id, err := repo.SaveResult(ctx, rec)
		if err != nil {
			logger.Error("failed to save result", zap.String("quiz_id", rec.QuizID), zap.Error(err))
		}
		return savedMsg{id: id, err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return s.deps.L.T(i18n.ScreenResults)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	l := s.deps.L
	return []layout.KeyHint{
		{Key: "↑↓", Description: l.T(i18n.ReviewHeading)},
		{Key: "Enter", Description: l.T(i18n.ButtonHome)},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saved = msg.err == nil
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "enter":
			s.deps.Session.Reset()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}
	l := s.deps.L
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var lines screens.Lines
	lines.Add(
		center.Foreground(scoreColor(res.Score)).Bold(true).Render(FormatScore(res.Score)),
		center.Foreground(theme.Text).Render(l.T(i18n.ScoreLine, res.CorrectCount, res.TotalQuestions)),
		"",
		components.SplitBar(res.CorrectCount, res.TotalQuestions, cw),
		center.Foreground(theme.TextDim).Render(fmt.Sprintf("%s %d   %s %d",
			theme.Correct.Render(l.T(i18n.Correct)), res.CorrectCount,
			theme.Incorrect.Render(l.T(i18n.Wrong)), res.WrongCount())),
	)
	if s.saved {
		lines.Add(center.Foreground(theme.TextDim).Italic(true).Render(l.T(i18n.SavedToHistory)))
	}
	lines.Add("", theme.Label.Render(l.T(i18n.ReviewHeading)),
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))

	header := len(lines)
	for _, q := range res.Quiz.Questions {
		lines.Add(reviewItem(l, q, cw), "")
	}

	// Keep the summary visible and scroll the review below it.
	reviewHeight := max(height-header-1, 1)
	maxOffset := max(len(lines)-header-reviewHeight, 0)
	s.offset = min(s.offset, maxOffset)

	visible := append([]string{}, lines[:header]...)
	end := min(header+s.offset+reviewHeight, len(lines))
	visible = append(visible, lines[header+s.offset:end]...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(visible, "\n"))
}

func reviewItem(l *i18n.Localizer, q quiz.Question, cw int) string {
	mark := theme.Correct.Render("✓ " + l.T(i18n.Correct))
	if !quiz.IsCorrect(q) {
		mark = theme.Incorrect.Render("✗ " + l.T(i18n.Wrong))
	}

	answer := strings.TrimSpace(q.Answer())
	if answer == "" {
		answer = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(l.T(i18n.BlankAnswer))
	}

	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw).
		Render(fmt.Sprintf("%d. %s", q.ID, q.Text))
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	return text + "\n" +
		"   " + mark + "\n" +
		"   " + dim.Render(l.T(i18n.YourAnswer)) + " " + answer + "\n" +
		"   " + dim.Render(l.T(i18n.CorrectAnswer)) + " " + theme.Correct.Render(q.CorrectAnswer)
}

// FormatScore renders a score as "7.5/10".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f/10", score)
}

func scoreColor(score float64) color.Color {
	switch {
	case score >= 8:
		return theme.Success
	case score >= 5:
		return theme.Accent
	default:
		return theme.Error
	}
}
