package quiz

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dakia/mathquiz/internal/i18n"
)

// MaxQuestions is the upper bound on questions in a single quiz.
const MaxQuestions = 15

// Grade is the class year a quiz targets.
type Grade int

const (
	Grade6 Grade = 6
	Grade7 Grade = 7
	Grade8 Grade = 8
	Grade9 Grade = 9
)

// DefaultGrade is preselected on every creator screen.
const DefaultGrade = Grade6

// AllGrades returns the supported grades in ascending order.
func AllGrades() []Grade {
	return []Grade{Grade6, Grade7, Grade8, Grade9}
}

// Valid reports whether g is one of the four supported grades.
func (g Grade) Valid() bool {
	return g >= Grade6 && g <= Grade9
}

func (g Grade) String() string {
	return fmt.Sprintf("Grade %d", int(g))
}

// Label is the localized display name, e.g. "Lớp 7".
func (g Grade) Label(l *i18n.Localizer) string {
	return l.T(i18n.GradeLabel, int(g))
}

// ParseGrade accepts "7", "Grade 7", "lop 7" or "Lớp 7" (any case).
func ParseGrade(s string) (Grade, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"grade", "lớp", "lop"} {
		s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid grade %q", s)
	}
	g := Grade(n)
	if !g.Valid() {
		return 0, fmt.Errorf("grade %d is not supported (6-9)", n)
	}
	return g, nil
}

// Source records how a quiz's questions were produced.
type Source string

const (
	SourceTopic  Source = "topic"
	SourceImage  Source = "image"
	SourceManual Source = "manual"
)

// Question is one short-answer item. Only UserAnswer changes after creation.
type Question struct {
	// ID is the 1-based position of the question within its quiz.
	ID int

	Text          string
	CorrectAnswer string

	// UserAnswer is nil until the student types something.
	UserAnswer *string
}

// Answer returns the student's answer, or "" when unattempted.
func (q Question) Answer() string {
	if q.UserAnswer == nil {
		return ""
	}
	return *q.UserAnswer
}

// Quiz is an ordered set of questions for one grade.
type Quiz struct {
	ID        string
	Title     string
	Grade     Grade
	Source    Source
	Questions []Question
	CreatedAt time.Time
}

// NewQuiz builds a quiz and renumbers the questions 1..n in the given order.
// Any student answers on the input are discarded.
func NewQuiz(title string, grade Grade, source Source, questions []Question) *Quiz {
	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = Question{
			ID:            i + 1,
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return &Quiz{
		ID:        uuid.New().String(),
		Title:     title,
		Grade:     grade,
		Source:    source,
		Questions: qs,
		CreatedAt: time.Now(),
	}
}

// Question returns a pointer to the question with the given ID, or nil.
func (q *Quiz) Question(id int) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// SetAnswer overwrites the student answer for question id.
// Returns false when no such question exists.
func (q *Quiz) SetAnswer(id int, text string) bool {
	qq := q.Question(id)
	if qq == nil {
		return false
	}
	qq.UserAnswer = &text
	return true
}

// Outcome is the per-question verdict kept for the review list.
type Outcome struct {
	QuestionID int
	Correct    bool
}

// Result is the score card built once at submission.
type Result struct {
	TotalQuestions int
	CorrectCount   int

	// Score is on a 0-10 scale with one decimal.
	Score float64

	Outcomes []Outcome
	Quiz     *Quiz
}

// WrongCount is the number of questions not answered correctly.
func (r *Result) WrongCount() int {
	return r.TotalQuestions - r.CorrectCount
}
