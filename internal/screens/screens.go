// Package screens holds the dependencies shared by every TUI screen and the
// helpers they render with. The screens themselves live in subpackages.
package screens

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/questiongen"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/session"
	"github.com/dakia/mathquiz/internal/store"
	"github.com/dakia/mathquiz/internal/uploads"
)

// ErrAIUnavailable is reported when a generation is requested but no
// provider could be configured.
var ErrAIUnavailable = errors.New("no LLM provider configured")

// Deps is passed to every screen constructor.
type Deps struct {
	Session *session.Controller

	// Generator is nil when no LLM provider is configured.
	Generator questiongen.Generator

	// Results is nil when history is disabled.
	Results store.ResultRepo

	Archive uploads.Archive
	Logger  *zap.Logger
	L       *i18n.Localizer
}

// WithDefaults fills the optional fields so screens never nil-check them.
func (d Deps) WithDefaults() Deps {
	if d.Session == nil {
		d.Session = session.NewController()
	}
	if d.Archive == nil {
		d.Archive = uploads.Nop{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.L == nil {
		d.L = i18n.New(i18n.DefaultLocale)
	}
	return d
}

// AIAvailable reports whether generation can be attempted.
func (d Deps) AIAvailable() bool {
	return d.Generator != nil
}

// Context is the context used by screen commands.
func (d Deps) Context() context.Context {
	return context.Background()
}

// UserMessage maps an error from a creation flow to a localized message.
// Validation failures get a specific message, provider failures a generic
// retry prompt.
func UserMessage(l *i18n.Localizer, err error) string {
	var genErr *questiongen.GenerationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAIUnavailable):
		return l.T(i18n.ErrAIUnavailable)
	case errors.Is(err, questiongen.ErrEmptyTopic):
		return l.T(i18n.ErrEnterTopic)
	case errors.Is(err, questiongen.ErrNoImage):
		return l.T(i18n.ErrChooseImage)
	case errors.Is(err, questiongen.ErrUnsupportedImage):
		return l.T(i18n.ErrUnsupportedImage)
	case errors.Is(err, questiongen.ErrImageTooLarge):
		return l.T(i18n.ErrImageTooLarge)
	case errors.Is(err, quiz.ErrNoQuestions):
		return l.T(i18n.ErrAddQuestion)
	case errors.Is(err, quiz.ErrIncompleteRow):
		return l.T(i18n.ErrFillRows)
	case errors.Is(err, session.ErrEmptyQuiz):
		return l.T(i18n.ErrNoUsableQuestions)
	case errors.As(err, &genErr):
		if genErr.Mode == questiongen.ModeImage {
			return l.T(i18n.ErrGenerateImage)
		}
		return l.T(i18n.ErrGenerateTopic)
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return l.T(i18n.ErrReadImage)
	default:
		return l.T(i18n.ErrGenerateTopic)
	}
}

// Scroll renders the lines in a window of the given height that keeps
// focusLine visible.
func Scroll(lines []string, focusLine, width, height int) string {
	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}
	vp := viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	vp.SetContent(strings.Join(lines, "\n"))

	offset := 0
	if focusLine >= height {
		offset = focusLine - height + 2
	}
	vp.SetYOffset(min(offset, len(lines)-height))
	return vp.View()
}

// Lines accumulates rendered blocks one terminal line per entry, so the
// current Len is the line number of the next block.
type Lines []string

// Add appends blocks, splitting multi-line blocks.
func (ls *Lines) Add(blocks ...string) {
	for _, b := range blocks {
		*ls = append(*ls, strings.Split(b, "\n")...)
	}
}
