package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/llm"
	"github.com/dakia/mathquiz/internal/quiz"
)

// LLM purposes recorded with every request.
const (
	PurposeTopic = "topic-questions"
	PurposeImage = "image-questions"
)

// LLMGenerator implements Generator using the LLM provider.
// It makes exactly one provider call per operation and never retries.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *LLMGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Count <= 0 || cfg.Count > quiz.MaxQuestions {
		cfg.Count = quiz.MaxQuestions
	}
	return &LLMGenerator{provider: provider, config: cfg, logger: logger}
}

// questionSetOutput is the raw LLM response before cleanup.
type questionSetOutput struct {
	Questions []struct {
		Text   string `json:"text"`
		Answer string `json:"answer"`
	} `json:"questions"`
}

// FromTopic creates questions for a grade and topic.
func (g *LLMGenerator) FromTopic(ctx context.Context, grade quiz.Grade, topic string) ([]quiz.Question, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	req := g.request(llm.Message{
		Role:    llm.RoleUser,
		Content: buildTopicMessage(grade, topic, g.config),
	})
	return g.generate(llm.WithPurpose(ctx, PurposeTopic), ModeTopic, req)
}

// FromImage creates questions from an image of course material.
func (g *LLMGenerator) FromImage(ctx context.Context, img Image, instructions string) ([]quiz.Question, error) {
	if len(img.Data) == 0 {
		return nil, ErrNoImage
	}
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		instructions = DefaultInstruction
	}

	req := g.request(llm.Message{
		Role:    llm.RoleUser,
		Content: buildImageMessage(instructions, g.config),
		Images:  []llm.Image{{MIMEType: img.MIMEType, Data: img.Data}},
	})
	return g.generate(llm.WithPurpose(ctx, PurposeImage), ModeImage, req)
}

func (g *LLMGenerator) request(msg llm.Message) llm.Request {
	return llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{msg},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
}

func (g *LLMGenerator) generate(ctx context.Context, mode Mode, req llm.Request) ([]quiz.Question, error) {
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		var truncated *llm.ErrMaxTokensExceeded
		if errors.As(err, &invalid) || errors.As(err, &truncated) {
			g.logger.Warn("discarding malformed question set",
				zap.String("mode", string(mode)), zap.Error(err))
			return []quiz.Question{}, nil
		}
		return nil, &GenerationError{Mode: mode, Err: err}
	}

	questions, err := parseQuestions(resp.Content, g.config.Count)
	if err != nil {
		g.logger.Warn("discarding undecodable question set",
			zap.String("mode", string(mode)), zap.Error(err))
		return []quiz.Question{}, nil
	}

	g.logger.Info("generated questions",
		zap.String("mode", string(mode)), zap.Int("count", len(questions)))
	return questions, nil
}

// parseQuestions decodes a question set, drops entries with a blank text or
// answer, trims the rest and numbers them 1..n in response order.
func parseQuestions(raw json.RawMessage, limit int) ([]quiz.Question, error) {
	var out questionSetOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		text := strings.TrimSpace(q.Text)
		answer := strings.TrimSpace(q.Answer)
		if text == "" || answer == "" {
			continue
		}
		questions = append(questions, quiz.Question{
			ID:            len(questions) + 1,
			Text:          text,
			CorrectAnswer: answer,
		})
		if len(questions) == limit {
			break
		}
	}
	return questions, nil
}
