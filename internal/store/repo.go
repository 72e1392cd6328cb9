package store

import (
	"context"
	"time"
)

// QueryOpts configures queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// AnswerRecord is one graded question of a stored result.
type AnswerRecord struct {
	QuestionID    int
	Text          string
	CorrectAnswer string
	UserAnswer    *string
	Correct       bool
}

// ResultRecord is a submitted quiz with its score card.
type ResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time

	QuizID  string
	Title   string
	Grade   int
	Source  string
	Total   int
	Correct int
	Score   float64

	// Answers is only populated by GetResult.
	Answers []AnswerRecord
}

// ResultRepo stores submitted quiz results.
type ResultRepo interface {
	// SaveResult appends a result with its answers and returns its ID.
	SaveResult(ctx context.Context, rec ResultRecord) (int, error)

	// ListResults returns results newest first, without answers.
	ListResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error)

	// GetResult returns one result with answers, or nil if it does not exist.
	GetResult(ctx context.Context, id int) (*ResultRecord, error)
}
