package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/llm"
	"github.com/dakia/mathquiz/internal/quiz"
)

func questionSetJSON(n int) json.RawMessage {
	var b strings.Builder
	b.WriteString(`{"questions":[`)
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"text":"%d + %d = ?","answer":"%d"}`, i, i, 2*i)
	}
	b.WriteString(`]}`)
	return json.RawMessage(b.String())
}

func newTestGenerator(responses ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig(), zap.NewNop()), mock
}

func TestFromTopic_FifteenQuestions(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: questionSetJSON(15)})

	qs, err := gen.FromTopic(context.Background(), quiz.Grade7, "Fractions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d", i, q.ID)
		}
		if q.UserAnswer != nil {
			t.Errorf("question %d should be unanswered", q.ID)
		}
	}
	if qs[2].Text != "3 + 3 = ?" || qs[2].CorrectAnswer != "6" {
		t.Errorf("unexpected third question: %+v", qs[2])
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 provider call, got %d", mock.CallCount())
	}
}

func TestFromTopic_RequestShape(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: questionSetJSON(1)})

	if _, err := gen.FromTopic(context.Background(), quiz.Grade8, "  Linear equations "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSetSchema {
		t.Error("expected the question-set schema")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Grade: 8", "Topic: Linear equations\n", "Create 15"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestFromTopic_EmptyTopic(t *testing.T) {
	gen, mock := newTestGenerator()

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := gen.FromTopic(context.Background(), quiz.Grade6, topic)
		if !errors.Is(err, ErrEmptyTopic) {
			t.Errorf("FromTopic(%q) err = %v, want ErrEmptyTopic", topic, err)
		}
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestFromTopic_ProviderFailure(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("quota exhausted")}})

	qs, err := gen.FromTopic(context.Background(), quiz.Grade6, "Integers")
	if qs != nil {
		t.Fatalf("expected no questions, got %d", len(qs))
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T (%v)", err, err)
	}
	if genErr.Mode != ModeTopic {
		t.Errorf("expected topic mode, got %q", genErr.Mode)
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Error("expected the provider error to be wrapped")
	}
}

func TestFromTopic_MalformedResponseYieldsEmptyList(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"schema violation", llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("missing questions")}}},
		{"undecodable", llm.MockResponse{Content: json.RawMessage(`not json`)}},
		{"empty list", llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _ := newTestGenerator(tt.resp)
			qs, err := gen.FromTopic(context.Background(), quiz.Grade9, "Functions")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if qs == nil || len(qs) != 0 {
				t.Fatalf("expected an empty, non-nil list, got %v", qs)
			}
		})
	}
}

func TestFromTopic_DefensiveParsing(t *testing.T) {
	raw := json.RawMessage(`{"questions":[
		{"text":"  2 + 2 = ?  ","answer":" 4 "},
		{"text":"","answer":"5"},
		{"text":"Blank answer","answer":"   "},
		{"text":"x = 3 - 1","answer":"2"}
	]}`)
	gen, _ := newTestGenerator(llm.MockResponse{Content: raw})

	qs, err := gen.FromTopic(context.Background(), quiz.Grade6, "Arithmetic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 surviving questions, got %d", len(qs))
	}
	if qs[0].ID != 1 || qs[0].Text != "2 + 2 = ?" || qs[0].CorrectAnswer != "4" {
		t.Errorf("unexpected first question: %+v", qs[0])
	}
	if qs[1].ID != 2 || qs[1].Text != "x = 3 - 1" {
		t.Errorf("unexpected second question: %+v", qs[1])
	}
}

func TestFromTopic_CapsAtFifteen(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{Content: questionSetJSON(20)})

	qs, err := gen.FromTopic(context.Background(), quiz.Grade6, "Arithmetic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != quiz.MaxQuestions {
		t.Fatalf("expected %d questions, got %d", quiz.MaxQuestions, len(qs))
	}
	if qs[14].ID != 15 {
		t.Errorf("expected last ID 15, got %d", qs[14].ID)
	}
}

func TestFromImage_AttachesImageAndDefaultInstruction(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: questionSetJSON(3)})
	img := Image{Name: "sheet.png", MIMEType: "image/png", Data: []byte("png-bytes")}

	qs, err := gen.FromImage(context.Background(), img, "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}

	msg := mock.Calls[0].Messages[0]
	if len(msg.Images) != 1 || msg.Images[0].MIMEType != "image/png" || string(msg.Images[0].Data) != "png-bytes" {
		t.Fatalf("image not attached: %+v", msg.Images)
	}
	if !strings.Contains(msg.Content, DefaultInstruction) {
		t.Errorf("expected default instruction in message:\n%s", msg.Content)
	}
}

func TestFromImage_UserInstruction(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: questionSetJSON(1)})
	img := Image{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}

	if _, err := gen.FromImage(context.Background(), img, "Only exercise 3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg := mock.Calls[0].Messages[0].Content; !strings.Contains(msg, `"Only exercise 3"`) {
		t.Errorf("expected user note in message:\n%s", msg)
	}
}

func TestFromImage_NoImage(t *testing.T) {
	gen, mock := newTestGenerator()
	_, err := gen.FromImage(context.Background(), Image{}, "")
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("expected no provider call")
	}
}

func TestFromImage_ProviderFailure(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{Err: &llm.ErrUnauthorized{Err: errors.New("401")}})
	img := Image{MIMEType: "image/png", Data: []byte("x")}

	_, err := gen.FromImage(context.Background(), img, "")
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Mode != ModeImage {
		t.Fatalf("expected image GenerationError, got %v", err)
	}
}
