package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

// GradePicker is a horizontal single-choice selector over the supported
// grades.
type GradePicker struct {
	Grades   []quiz.Grade
	Selected int
	Focused  bool
}

// NewGradePicker preselects quiz.DefaultGrade.
func NewGradePicker() GradePicker {
	p := GradePicker{Grades: quiz.AllGrades()}
	p.SetGrade(quiz.DefaultGrade)
	return p
}

// Grade returns the selected grade.
func (p GradePicker) Grade() quiz.Grade {
	if p.Selected < 0 || p.Selected >= len(p.Grades) {
		return quiz.DefaultGrade
	}
	return p.Grades[p.Selected]
}

// SetGrade selects g if it is one of the options.
func (p *GradePicker) SetGrade(g quiz.Grade) {
	for i, opt := range p.Grades {
		if opt == g {
			p.Selected = i
			return
		}
	}
}

// Update moves the selection with left/right or the digit keys 6-9 while
// focused.
func (p GradePicker) Update(msg tea.Msg) (GradePicker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Grades)-1 {
			p.Selected++
		}
	default:
		if g, err := quiz.ParseGrade(key); err == nil {
			p.SetGrade(g)
		}
	}
	return p, nil
}

// View renders every grade with the selected one highlighted.
func (p GradePicker) View(l *i18n.Localizer) string {
	parts := make([]string, 0, len(p.Grades))
	for i, g := range p.Grades {
		label := g.Label(l)
		switch {
		case i == p.Selected && p.Focused:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" "+label+" "))
		case i == p.Selected:
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "  ")
}
