package quiz

import (
	"errors"
	"strings"
)

var (
	// ErrNoQuestions is returned when finishing a draft without rows.
	ErrNoQuestions = errors.New("add at least one question")

	// ErrIncompleteRow is returned when a draft row lacks text or answer.
	ErrIncompleteRow = errors.New("every question needs both text and answer")
)

// Row is one hand-entered question in a Draft.
type Row struct {
	ID     int
	Text   string
	Answer string
}

func (r Row) complete() bool {
	return strings.TrimSpace(r.Text) != "" && strings.TrimSpace(r.Answer) != ""
}

// Draft collects hand-typed questions before a quiz is built.
type Draft struct {
	rows []Row
}

// Rows returns a copy of the current rows.
func (d *Draft) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// Len returns the number of rows.
func (d *Draft) Len() int { return len(d.rows) }

// Full reports whether no more rows can be added.
func (d *Draft) Full() bool { return len(d.rows) >= MaxQuestions }

// AddRow appends an empty row. It is a no-op returning false once
// MaxQuestions rows exist.
func (d *Draft) AddRow() bool {
	if d.Full() {
		return false
	}
	d.rows = append(d.rows, Row{ID: len(d.rows) + 1})
	return true
}

// RemoveLast drops the most recently added row.
func (d *Draft) RemoveLast() {
	if len(d.rows) > 0 {
		d.rows = d.rows[:len(d.rows)-1]
	}
}

// SetText updates the question text of row id.
func (d *Draft) SetText(id int, text string) bool {
	r := d.row(id)
	if r == nil {
		return false
	}
	r.Text = text
	return true
}

// SetAnswer updates the correct answer of row id.
func (d *Draft) SetAnswer(id int, answer string) bool {
	r := d.row(id)
	if r == nil {
		return false
	}
	r.Answer = answer
	return true
}

func (d *Draft) row(id int) *Row {
	for i := range d.rows {
		if d.rows[i].ID == id {
			return &d.rows[i]
		}
	}
	return nil
}

// Validate checks the draft can become a quiz.
func (d *Draft) Validate() error {
	if len(d.rows) == 0 {
		return ErrNoQuestions
	}
	for _, r := range d.rows {
		if !r.complete() {
			return ErrIncompleteRow
		}
	}
	return nil
}

// Finish validates the draft and builds a manual quiz from it.
func (d *Draft) Finish(title string, grade Grade) (*Quiz, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	qs := make([]Question, len(d.rows))
	for i, r := range d.rows {
		qs[i] = Question{Text: r.Text, CorrectAnswer: r.Answer}
	}
	return NewQuiz(title, grade, SourceManual, qs), nil
}

// Reset discards every row.
func (d *Draft) Reset() {
	d.rows = nil
}
