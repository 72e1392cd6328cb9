// Package questiongen turns a grade and topic, or an image of course
// material, into a list of short-answer questions using an LLM provider.
package questiongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/dakia/mathquiz/internal/quiz"
)

// Generator produces short-answer math questions.
type Generator interface {
	// FromTopic creates questions for a grade and topic.
	FromTopic(ctx context.Context, grade quiz.Grade, topic string) ([]quiz.Question, error)

	// FromImage creates questions from an image of course material.
	// An empty instruction is replaced by DefaultInstruction.
	FromImage(ctx context.Context, img Image, instructions string) ([]quiz.Question, error)
}

// Mode identifies which generation flow produced an error.
type Mode string

const (
	ModeTopic Mode = "topic"
	ModeImage Mode = "image"
)

// Validation errors, returned before any provider call.
var (
	ErrEmptyTopic       = errors.New("topic is required")
	ErrNoImage          = errors.New("an image is required")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image is too large")
)

// GenerationError wraps a provider failure (transport, auth, quota).
type GenerationError struct {
	Mode Mode
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate questions from %s: %v", e.Mode, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
