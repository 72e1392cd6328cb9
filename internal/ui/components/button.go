package components

import (
	"github.com/dakia/mathquiz/internal/ui/theme"
)

// Button is a focusable action in a form.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// NewButton creates an unfocused button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	if b.Focused && !b.Disabled {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
