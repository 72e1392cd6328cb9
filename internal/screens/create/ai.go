package create

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/questiongen"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/layout"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

const (
	aiFocusGrade = iota
	aiFocusTopic
	aiFocusCreate
	aiFieldCount
)

// AIScreen creates a quiz from a grade and a topic.
type AIScreen struct {
	flow
	topic  components.TextInput
	button components.Button
	focus  int
}

var _ screen.Screen = (*AIScreen)(nil)
var _ screen.KeyHintProvider = (*AIScreen)(nil)

// NewAI creates the AI topic creator.
func NewAI(deps screens.Deps) *AIScreen {
	s := &AIScreen{flow: newFlow(deps)}
	s.topic = components.NewTextInput(s.deps.L.T(i18n.FieldTopicHint), 120, 40)
	s.button = components.NewButton(s.deps.L.T(i18n.ButtonCreate))
	s.setFocus(aiFocusGrade)
	return s
}

func (s *AIScreen) Init() tea.Cmd {
	return nil
}

func (s *AIScreen) Title() string {
	return s.deps.L.T(i18n.ScreenAICreate)
}

func (s *AIScreen) KeyHints() []layout.KeyHint {
	l := s.deps.L
	return []layout.KeyHint{
		{Key: "Tab", Description: l.T(i18n.KeyNext)},
		{Key: "←→", Description: l.T(i18n.FieldGrade)},
		{Key: "Enter", Description: l.T(i18n.ButtonCreate)},
		{Key: "Esc", Description: l.T(i18n.KeyBack)},
	}
}

func (s *AIScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.grade.Focused = i == aiFocusGrade
	s.button.Focused = i == aiFocusCreate
	if i == aiFocusTopic {
		return s.topic.Focus()
	}
	s.topic.Blur()
	return nil
}

func (s *AIScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if !s.current(msg) {
			return s, nil
		}
		return s, s.finish(msg)

	case spinner.TickMsg:
		return s, s.tick(msg)

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus(moveFocus(s.focus, 1, aiFieldCount))
		case "shift+tab", "up":
			return s, s.setFocus(moveFocus(s.focus, -1, aiFieldCount))
		case "enter":
			if s.focus == aiFocusGrade {
				return s, s.setFocus(aiFocusTopic)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case aiFocusGrade:
		s.grade, cmd = s.grade.Update(msg)
	case aiFocusTopic:
		s.topic, cmd = s.topic.Update(msg)
	}
	return s, cmd
}

func (s *AIScreen) submit() tea.Cmd {
	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		s.fail(questiongen.ErrEmptyTopic)
		return nil
	}
	if !s.deps.AIAvailable() {
		s.fail(screens.ErrAIUnavailable)
		return nil
	}

	gen := s.deps.Generator
	grade := s.grade.Grade()
	title := s.deps.L.T(i18n.TitleTopic, topic)
	return s.begin(title, quiz.SourceTopic, func(ctx context.Context) ([]quiz.Question, error) {
		return gen.FromTopic(ctx, grade, topic)
	})
}

func (s *AIScreen) View(width, height int) string {
	l := s.deps.L
	cw := components.ContentWidth(width)

	body := theme.Title.Width(cw-4).Render(s.Title()) + "\n\n" +
		field(l.T(i18n.FieldGrade), s.grade.View(l)) + "\n\n" +
		field(l.T(i18n.FieldTopic), s.topic.View()) + "\n\n" +
		s.button.View()
	if status := s.statusView(l.T(i18n.Generating)); status != "" {
		body += "\n\n" + status
	}
	return components.CabinetFrame(components.Card(body, cw), width, height)
}
