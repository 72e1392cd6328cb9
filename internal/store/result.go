package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/dakia/mathquiz/internal/quiz"
)

var resultColumns = []string{
	"id", "sequence", "timestamp", "quiz_id", "title", "grade",
	"source", "total", "correct", "score",
}

// NewResultRecord flattens a scored quiz for storage.
func NewResultRecord(r *quiz.Result) ResultRecord {
	rec := ResultRecord{
		Total:   r.TotalQuestions,
		Correct: r.CorrectCount,
		Score:   r.Score,
	}
	if r.Quiz == nil {
		return rec
	}

	rec.QuizID = r.Quiz.ID
	rec.Title = r.Quiz.Title
	rec.Grade = int(r.Quiz.Grade)
	rec.Source = string(r.Quiz.Source)

	correct := make(map[int]bool, len(r.Outcomes))
	for _, o := range r.Outcomes {
		correct[o.QuestionID] = o.Correct
	}
	for _, q := range r.Quiz.Questions {
		rec.Answers = append(rec.Answers, AnswerRecord{
			QuestionID:    q.ID,
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			Correct:       correct[q.ID],
		})
	}
	return rec
}

// resultRepo implements ResultRepo backed by SQLite.
type resultRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *resultRepo) SaveResult(ctx context.Context, rec ResultRecord) (int, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := builder().Insert("quiz_results").
		Columns(resultColumns[1:]...).
		Values(
			seqNum,
			time.Now().UTC(),
			rec.QuizID,
			rec.Title,
			rec.Grade,
			rec.Source,
			rec.Total,
			rec.Correct,
			rec.Score,
		).
		Query()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result id: %w", err)
	}

	if len(rec.Answers) > 0 {
		ins := builder().Insert("result_answers").
			Columns("question_id", "text", "correct_answer", "user_answer", "correct", "result_id")
		for _, a := range rec.Answers {
			var user any
			if a.UserAnswer != nil {
				user = *a.UserAnswer
			}
			ins.Values(a.QuestionID, a.Text, a.CorrectAnswer, user, a.Correct, id)
		}
		query, args = ins.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("save answers: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return int(id), nil
}

func (r *resultRepo) ListResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error) {
	sel := builder().Select(resultColumns...).
		From(builder().Table("quiz_results")).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		rec, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *resultRepo) GetResult(ctx context.Context, id int) (*ResultRecord, error) {
	query, args := builder().Select(resultColumns...).
		From(builder().Table("quiz_results")).
		Where(entsql.EQ("id", id)).
		Query()

	rec, err := scanResult(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	query, args = builder().Select("question_id", "text", "correct_answer", "user_answer", "correct").
		From(builder().Table("result_answers")).
		Where(entsql.EQ("result_id", id)).
		OrderBy("question_id").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a    AnswerRecord
			user sql.NullString
		)
		if err := rows.Scan(&a.QuestionID, &a.Text, &a.CorrectAnswer, &user, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		if user.Valid {
			s := user.String
			a.UserAnswer = &s
		}
		rec.Answers = append(rec.Answers, a)
	}
	return rec, rows.Err()
}

func scanResult(row rowScanner) (*ResultRecord, error) {
	var rec ResultRecord
	err := row.Scan(
		&rec.ID,
		&rec.Sequence,
		&rec.Timestamp,
		&rec.QuizID,
		&rec.Title,
		&rec.Grade,
		&rec.Source,
		&rec.Total,
		&rec.Correct,
		&rec.Score,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan result: %w", err)
	}
	return &rec, nil
}
