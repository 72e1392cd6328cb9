package questiongen

import "github.com/dakia/mathquiz/internal/llm"

// QuestionSetSchema is the response shape for both generation modes.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A list of short-answer math questions with their answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The short math question",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The short answer: a number, a formula or a few words",
						},
					},
					"required":             []any{"text", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
