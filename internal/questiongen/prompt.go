package questiongen

import (
	"fmt"
	"strings"

	"github.com/dakia/mathquiz/internal/quiz"
)

const systemPrompt = `You are a math teaching assistant at a Vietnamese lower-secondary school (grades 6-9).
You write short-answer (fill-in) exercises that follow the "Chân trời sáng tạo" textbook series.

Rules:
- Every question must have exactly one short, unambiguous answer: a number, a formula or a short phrase.
- Write the answer in its simplest form (reduce fractions, no trailing zeros).
- Use plain text for math. No LaTeX. Use / for fractions and ^ for powers.
- Difficulty suits students aged 12-15.
- Return JSON only, matching the provided schema.`

// buildTopicMessage constructs the user message for topic mode.
func buildTopicMessage(grade quiz.Grade, topic string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d short-answer math questions.\n", cfg.Count)
	fmt.Fprintf(&b, "Grade: %d\n", int(grade))
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	b.WriteString("Follow the content of the Chân trời sáng tạo textbook for this grade.\n")
	if cfg.Language != "" {
		fmt.Fprintf(&b, "Write questions and answers in %s.\n", cfg.Language)
	}

	return b.String()
}

// buildImageMessage constructs the text that accompanies the image.
func buildImageMessage(instructions string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Using the attached material and this note: %q\n", instructions)
	fmt.Fprintf(&b, "Extract or create %d short-answer math questions for lower-secondary students (grades 6-9).\n", cfg.Count)
	b.WriteString("If the image is an exercise sheet, solve it and return each exercise with its correct answer.\n")
	b.WriteString("If the image is theory, create review questions based on it.\n")
	b.WriteString("Reference textbook: Chân trời sáng tạo.\n")
	if cfg.Language != "" {
		fmt.Fprintf(&b, "Write questions and answers in %s.\n", cfg.Language)
	}

	return b.String()
}
