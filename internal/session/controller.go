// Package session owns the quiz lifecycle: which screen mode is active,
// the quiz being taken and the score card once it is submitted.
package session

import (
	"errors"
	"fmt"

	"github.com/dakia/mathquiz/internal/quiz"
)

// Mode is the current phase of the application.
type Mode int

const (
	ModeHome Mode = iota
	ModeCreatingByAI
	ModeCreatingManually
	ModeCreatingByUpload
	ModeTaking
	ModeResults
)

var modeNames = map[Mode]string{
	ModeHome:             "home",
	ModeCreatingByAI:     "creating-ai",
	ModeCreatingManually: "creating-manual",
	ModeCreatingByUpload: "creating-upload",
	ModeTaking:           "taking",
	ModeResults:          "results",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Creating reports whether m is one of the three quiz creation modes.
func (m Mode) Creating() bool {
	return m == ModeCreatingByAI || m == ModeCreatingManually || m == ModeCreatingByUpload
}

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current mode.
	ErrInvalidTransition = errors.New("invalid mode transition")

	// ErrEmptyQuiz is returned by Start for a quiz without questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
)

// Controller tracks the mode, the active quiz, the last result and the last
// creation error. It is owned by the UI loop and is not safe for concurrent
// use.
type Controller struct {
	mode    Mode
	quiz    *quiz.Quiz
	result  *quiz.Result
	lastErr error
}

// NewController starts on the home screen.
func NewController() *Controller {
	return &Controller{mode: ModeHome}
}

func (c *Controller) Mode() Mode { return c.mode }

// Quiz returns the active quiz, or nil.
func (c *Controller) Quiz() *quiz.Quiz { return c.quiz }

// Result returns the score card of the last submission, or nil.
func (c *Controller) Result() *quiz.Result { return c.result }

// Err returns the error recorded by the last failed creation attempt.
func (c *Controller) Err() error { return c.lastErr }

// Select moves from home into one of the creation modes.
func (c *Controller) Select(mode Mode) error {
	if c.mode != ModeHome || !mode.Creating() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.mode, mode)
	}
	c.mode = mode
	c.lastErr = nil
	return nil
}

// Start begins taking q. It is only valid from a creation mode, and a quiz
// with no questions is refused without changing the mode.
func (c *Controller) Start(q *quiz.Quiz) error {
	if !c.mode.Creating() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.mode, ModeTaking)
	}
	if q == nil || len(q.Questions) == 0 {
		c.lastErr = ErrEmptyQuiz
		return ErrEmptyQuiz
	}
	c.quiz = q
	c.result = nil
	c.lastErr = nil
	c.mode = ModeTaking
	return nil
}

// Fail records a creation error. The mode is unchanged.
func (c *Controller) Fail(err error) {
	c.lastErr = err
}

// ClearError forgets the last creation error.
func (c *Controller) ClearError() {
	c.lastErr = nil
}

// RecordAnswer overwrites the answer to question id. It reports false when
// no quiz is being taken or the id is unknown.
func (c *Controller) RecordAnswer(id int, text string) bool {
	if c.mode != ModeTaking || c.quiz == nil {
		return false
	}
	return c.quiz.SetAnswer(id, text)
}

// Submit scores the active quiz and moves to results.
func (c *Controller) Submit() (*quiz.Result, error) {
	if c.mode != ModeTaking || c.quiz == nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.mode, ModeResults)
	}
	c.result = quiz.Score(c.quiz)
	c.mode = ModeResults
	return c.result, nil
}

// Reset returns to home from any mode and discards all quiz state.
func (c *Controller) Reset() {
	c.mode = ModeHome
	c.quiz = nil
	c.result = nil
	c.lastErr = nil
}
