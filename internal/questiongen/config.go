package questiongen

import "github.com/dakia/mathquiz/internal/quiz"

// DefaultInstruction is used for image generation when the user leaves the
// note empty.
const DefaultInstruction = "Create questions from this material"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Count is how many questions to ask for and the most that are kept.
	Count int

	// Language is the language questions and answers are written in.
	Language string

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig asks for a full quiz in Vietnamese.
func DefaultConfig() Config {
	return Config{
		Count:       quiz.MaxQuestions,
		Language:    "Vietnamese",
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
