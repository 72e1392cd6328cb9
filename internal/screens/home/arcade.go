package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 30

// renderTitle returns the app name and tagline.
func renderTitle(l *i18n.Localizer, cw int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true).
		Render("∑  " + l.T(i18n.AppName) + "  π")
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(l.T(i18n.AppTagline))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(name + "\n" + tagline)
}

// renderStatsBar shows the last saved score, if any.
func renderStatsBar(l *i18n.Localizer, last *lastResult, cw int) string {
	if last == nil {
		return ""
	}
	text := fmt.Sprintf("★ %.1f/10   %s   %s",
		last.score,
		last.title,
		l.T(i18n.ScoreLine, last.correct, last.total),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Foreground(theme.Info).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// renderHint shows the description of the highlighted menu item.
func renderHint(hint string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(hint)
}

// renderAIBanner warns that no API key is configured.
func renderAIBanner(l *i18n.Localizer, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + l.T(i18n.ErrAIUnavailable))
}
