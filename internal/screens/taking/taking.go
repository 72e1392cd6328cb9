// Package taking is the screen where the student answers the quiz.
package taking

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/screens/results"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/layout"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

// TakingScreen shows every question with its own answer input. Focus runs
// over the inputs and then the submit button.
type TakingScreen struct {
	deps   screens.Deps
	quiz   *quiz.Quiz
	inputs []components.TextInput
	submit components.Button
	focus  int
}

var _ screen.Screen = (*TakingScreen)(nil)
var _ screen.KeyHintProvider = (*TakingScreen)(nil)

// New builds the screen for the session's active quiz.
func New(deps screens.Deps) *TakingScreen {
	deps = deps.WithDefaults()
	s := &TakingScreen{
		deps:   deps,
		quiz:   deps.Session.Quiz(),
		submit: components.NewButton(deps.L.T(i18n.ButtonSubmit)),
	}
	if s.quiz != nil {
		for _, q := range s.quiz.Questions {
			in := components.NewTextInput(deps.L.T(i18n.AnswerHint), 120, 40)
			if q.UserAnswer != nil {
				in.SetValue(*q.UserAnswer)
			}
			s.inputs = append(s.inputs, in)
		}
	}
	s.setFocus(0)
	return s
}

func (s *TakingScreen) Init() tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	return s.inputs[0].Focus()
}

func (s *TakingScreen) Title() string {
	if s.quiz != nil {
		return s.quiz.Title
	}
	return s.deps.L.T(i18n.ScreenTaking)
}

func (s *TakingScreen) KeyHints() []layout.KeyHint {
	l := s.deps.L
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: l.T(i18n.KeyNavigate)},
		{Key: "Ctrl+S", Description: l.T(i18n.ButtonSubmit)},
		{Key: "Esc", Description: l.T(i18n.ButtonHome)},
	}
}

func (s *TakingScreen) submitIndex() int {
	return len(s.inputs)
}

func (s *TakingScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.submit.Focused = i == s.submitIndex()
	var cmd tea.Cmd
	for j := range s.inputs {
		if j == i {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

func (s *TakingScreen) move(delta int) tea.Cmd {
	n := len(s.inputs) + 1
	return s.setFocus(((s.focus+delta)%n + n) % n)
}

func (s *TakingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.move(1)
		case "shift+tab", "up":
			return s, s.move(-1)
		case "ctrl+s":
			return s, s.finish()
		case "enter":
			if s.focus == s.submitIndex() {
				return s, s.finish()
			}
			return s, s.move(1)
		}
	}

	if s.focus >= len(s.inputs) {
		return s, nil
	}
	before := s.inputs[s.focus].Value()
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if after := s.inputs[s.focus].Value(); after != before {
		s.deps.Session.RecordAnswer(s.quiz.Questions[s.focus].ID, after)
	}
	return s, cmd
}

// finish scores the quiz and replaces this screen with the results.
func (s *TakingScreen) finish() tea.Cmd {
	res, err := s.deps.Session.Submit()
	if err != nil {
		s.deps.Logger.Warn("submit rejected", zap.Error(err))
		return nil
	}
	s.deps.Logger.Info("quiz submitted",
		zap.String("quiz_id", res.Quiz.ID),
		zap.Int("correct", res.CorrectCount),
		zap.Int("total", res.TotalQuestions),
		zap.Float64("score", res.Score),
	)
	next := results.New(s.deps, res)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *TakingScreen) answered() int {
	n := 0
	for _, in := range s.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			n++
		}
	}
	return n
}

func (s *TakingScreen) View(width, height int) string {
	if s.quiz == nil {
		return ""
	}
	l := s.deps.L
	cw := components.ContentWidth(width)

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s", s.quiz.Grade.Label(l), l.T(i18n.QuestionCounter, len(s.quiz.Questions))))
	total := len(s.quiz.Questions)
	progress := components.NewProgressBar(
		l.T(i18n.AnsweredCounter, s.answered(), total),
		float64(s.answered())/float64(max(total, 1)),
		false, cw,
	).View()

	var lines screens.Lines
	lines.Add(header, progress, "")
	focusLine := 0
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)
	for i, q := range s.quiz.Questions {
		if i == s.focus {
			focusLine = len(lines)
		}
		num := theme.Label.Render(fmt.Sprintf("%d.", q.ID))
		lines.Add(textStyle.Render(num+" "+q.Text), s.inputs[i].View(), "")
	}
	if s.focus == s.submitIndex() {
		focusLine = len(lines)
	}
	lines.Add(s.submit.View())

	body := screens.Scroll(lines, focusLine+2, cw, height-1)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
