// Package create holds the three quiz creation screens: AI by topic,
// manual entry and AI from an image.
package create

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/screens/taking"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/theme"
)

// generatedMsg carries the outcome of one generation request.
type generatedMsg struct {
	reqID     string
	questions []quiz.Question
	err       error
}

// flow is the state every creator shares: grade, in-flight request and
// the last error shown to the user.
type flow struct {
	deps    screens.Deps
	grade   components.GradePicker
	spinner spinner.Model

	busy   bool
	reqID  string
	title  string
	source quiz.Source
	errMsg string
}

func newFlow(deps screens.Deps) flow {
	return flow{
		deps:    deps.WithDefaults(),
		grade:   components.NewGradePicker(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// begin starts a generation request unless one is already in flight.
// The title and source are applied to the quiz when the request succeeds.
func (f *flow) begin(title string, source quiz.Source, run func(ctx context.Context) ([]quiz.Question, error)) tea.Cmd {
	if f.busy {
		return nil
	}
	f.busy = true
	f.errMsg = ""
	f.deps.Session.ClearError()
	f.title = title
	f.source = source
	f.reqID = uuid.NewString()

	id := f.reqID
	ctx := f.deps.Context()
	return tea.Batch(f.spinner.Tick, func() tea.Msg {
		qs, err := run(ctx)
		return generatedMsg{reqID: id, questions: qs, err: err}
	})
}

// current reports whether msg answers the request in flight.
func (f *flow) current(msg generatedMsg) bool {
	return f.busy && msg.reqID == f.reqID
}

// finish turns a generation outcome into a quiz and starts it.
func (f *flow) finish(msg generatedMsg) tea.Cmd {
	f.busy = false
	if msg.err != nil {
		f.deps.Logger.Warn("question generation failed",
			zap.String("source", string(f.source)),
			zap.Error(msg.err),
		)
		f.fail(msg.err)
		return nil
	}
	return f.start(quiz.NewQuiz(f.title, f.grade.Grade(), f.source, msg.questions))
}

func (f *flow) fail(err error) {
	f.deps.Session.Fail(err)
	f.errMsg = screens.UserMessage(f.deps.L, err)
}

// start hands q to the session and replaces the creator with the taking
// screen. An empty quiz stays on the creator with an error.
func (f *flow) start(q *quiz.Quiz) tea.Cmd {
	if err := f.deps.Session.Start(q); err != nil {
		f.fail(err)
		return nil
	}
	f.errMsg = ""
	f.deps.Logger.Info("quiz started",
		zap.String("quiz_id", q.ID),
		zap.String("source", string(q.Source)),
		zap.Int("grade", int(q.Grade)),
		zap.Int("questions", len(q.Questions)),
	)
	next := taking.New(f.deps)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// tick advances the spinner while a request is in flight.
func (f *flow) tick(msg spinner.TickMsg) tea.Cmd {
	if !f.busy {
		return nil
	}
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(msg)
	return cmd
}

// statusView renders the spinner or the last error.
func (f *flow) statusView(busyText string) string {
	switch {
	case f.busy:
		return f.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.Accent).Render(busyText)
	case f.errMsg != "":
		return theme.ErrorText.Render(f.errMsg)
	}
	return ""
}

// field renders a label above a control.
func field(label, control string) string {
	return theme.Label.Render(label) + "\n" + control
}

// moveFocus steps focus by delta, wrapping within [0, n).
func moveFocus(focus, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((focus+delta)%n + n) % n
}
