package create

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/layout"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

type rowInputs struct {
	text   components.TextInput
	answer components.TextInput
}

// ManualScreen lets the user type up to quiz.MaxQuestions questions.
//
// Focus order: grade, then text and answer of every row, then the add
// button (hidden once the draft is full), then the finish button.
type ManualScreen struct {
	flow
	draft quiz.Draft
	rows  []rowInputs
	add   components.Button
	done  components.Button
	focus int
}

var _ screen.Screen = (*ManualScreen)(nil)
var _ screen.KeyHintProvider = (*ManualScreen)(nil)

// NewManual creates the manual creator with no rows.
func NewManual(deps screens.Deps) *ManualScreen {
	s := &ManualScreen{flow: newFlow(deps)}
	s.done = components.NewButton(s.deps.L.T(i18n.ButtonFinish))
	s.add = components.NewButton(s.addLabel())
	s.setFocus(0)
	return s
}

func (s *ManualScreen) Init() tea.Cmd {
	return nil
}

func (s *ManualScreen) Title() string {
	return s.deps.L.T(i18n.ScreenManual)
}

func (s *ManualScreen) KeyHints() []layout.KeyHint {
	l := s.deps.L
	return []layout.KeyHint{
		{Key: "Tab", Description: l.T(i18n.KeyNext)},
		{Key: "Enter", Description: l.T(i18n.KeySelect)},
		{Key: "Ctrl+D", Description: l.T(i18n.KeyRemove)},
		{Key: "Esc", Description: l.T(i18n.KeyBack)},
	}
}

func (s *ManualScreen) addLabel() string {
	return s.deps.L.T(i18n.ButtonAddQuestion, s.draft.Len(), quiz.MaxQuestions)
}

func (s *ManualScreen) addIndex() int {
	if s.draft.Full() {
		return -1
	}
	return 1 + 2*len(s.rows)
}

func (s *ManualScreen) finishIndex() int {
	if s.draft.Full() {
		return 1 + 2*len(s.rows)
	}
	return 2 + 2*len(s.rows)
}

func (s *ManualScreen) fieldCount() int {
	return s.finishIndex() + 1
}

// rowAt maps a focus index onto a row and column (0 text, 1 answer).
func (s *ManualScreen) rowAt(focus int) (row, col int, ok bool) {
	if focus < 1 || focus > 2*len(s.rows) {
		return 0, 0, false
	}
	return (focus - 1) / 2, (focus - 1) % 2, true
}

func (s *ManualScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.grade.Focused = i == 0
	s.add.Focused = i == s.addIndex()
	s.done.Focused = i == s.finishIndex()

	var cmd tea.Cmd
	row, col, ok := s.rowAt(i)
	for r := range s.rows {
		s.rows[r].text.Blur()
		s.rows[r].answer.Blur()
		if ok && r == row {
			if col == 0 {
				cmd = s.rows[r].text.Focus()
			} else {
				cmd = s.rows[r].answer.Focus()
			}
		}
	}
	return cmd
}

func (s *ManualScreen) addRow() tea.Cmd {
	if !s.draft.AddRow() {
		return nil
	}
	l := s.deps.L
	s.rows = append(s.rows, rowInputs{
		text:   components.NewTextInput(l.T(i18n.FieldQuestion, len(s.rows)+1), 300, 50),
		answer: components.NewTextInput(l.T(i18n.FieldAnswer), 80, 30),
	})
	s.add.Label = s.addLabel()
	s.errMsg = ""
	return s.setFocus(1 + 2*(len(s.rows)-1))
}

func (s *ManualScreen) removeLast() tea.Cmd {
	if len(s.rows) == 0 {
		return nil
	}
	s.draft.RemoveLast()
	s.rows = s.rows[:len(s.rows)-1]
	s.add.Label = s.addLabel()
	return s.setFocus(min(s.focus, s.fieldCount()-1))
}

func (s *ManualScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus(moveFocus(s.focus, 1, s.fieldCount()))
		case "shift+tab", "up":
			return s, s.setFocus(moveFocus(s.focus, -1, s.fieldCount()))
		case "ctrl+d":
			return s, s.removeLast()
		case "enter":
			switch s.focus {
			case s.addIndex():
				return s, s.addRow()
			case s.finishIndex():
				return s, s.submit()
			default:
				return s, s.setFocus(moveFocus(s.focus, 1, s.fieldCount()))
			}
		}
	}

	if s.focus == 0 {
		var cmd tea.Cmd
		s.grade, cmd = s.grade.Update(msg)
		return s, cmd
	}

	row, col, ok := s.rowAt(s.focus)
	if !ok {
		return s, nil
	}
	var cmd tea.Cmd
	id := row + 1
	if col == 0 {
		s.rows[row].text, cmd = s.rows[row].text.Update(msg)
		s.draft.SetText(id, s.rows[row].text.Value())
	} else {
		s.rows[row].answer, cmd = s.rows[row].answer.Update(msg)
		s.draft.SetAnswer(id, s.rows[row].answer.Value())
	}
	return s, cmd
}

func (s *ManualScreen) submit() tea.Cmd {
	q, err := s.draft.Finish(s.deps.L.T(i18n.TitleManual), s.grade.Grade())
	if err != nil {
		s.fail(err)
		return nil
	}
	return s.start(q)
}

func (s *ManualScreen) View(width, height int) string {
	l := s.deps.L
	cw := components.ContentWidth(width)

	var lines screens.Lines
	lines.Add(theme.Title.Width(cw).Render(s.Title()), "", field(l.T(i18n.FieldGrade), s.grade.View(l)), "")
	focusLine := 0

	for i, r := range s.rows {
		if row, _, ok := s.rowAt(s.focus); ok && row == i {
			focusLine = len(lines)
		}
		lines.Add(
			theme.Label.Render(l.T(i18n.FieldQuestion, i+1)),
			r.text.View(),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(l.T(i18n.FieldAnswer)),
			r.answer.View(),
			"",
		)
	}

	if !s.draft.Full() {
		if s.focus == s.addIndex() {
			focusLine = len(lines)
		}
		lines.Add(s.add.View(), "")
	}
	if s.focus == s.finishIndex() {
		focusLine = len(lines)
	}
	lines.Add(s.done.View())
	if status := s.statusView(""); status != "" {
		lines.Add("", status)
	}

	body := screens.Scroll(lines, focusLine+4, cw, height-1)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
