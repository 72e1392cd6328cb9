package results

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/session"
	"github.com/dakia/mathquiz/internal/store"
)

type fakeResults struct {
	saved []store.ResultRecord
	err   error
}

func (f *fakeResults) SaveResult(_ context.Context, rec store.ResultRecord) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, rec)
	return len(f.saved), nil
}

func (f *fakeResults) ListResults(context.Context, store.QueryOpts) ([]store.ResultRecord, error) {
	return f.saved, nil
}

func (f *fakeResults) GetResult(context.Context, int) (*store.ResultRecord, error) {
	return nil, nil
}

func submitted(t *testing.T) (screens.Deps, *quiz.Result) {
	t.Helper()
	ctl := session.NewController()
	if err := ctl.Select(session.ModeCreatingByAI); err != nil {
		t.Fatal(err)
	}
	q := quiz.NewQuiz("Exercise: Fractions", quiz.Grade6, quiz.SourceTopic, []quiz.Question{
		{Text: "1/2 + 1/2 = ?", CorrectAnswer: "1"},
		{Text: "1/4 of 8 = ?", CorrectAnswer: "2"},
		{Text: "3/3 = ?", CorrectAnswer: "1"},
		{Text: "2/4 = ?", CorrectAnswer: "1/2"},
	})
	if err := ctl.Start(q); err != nil {
		t.Fatal(err)
	}
	ctl.RecordAnswer(1, "1")
	ctl.RecordAnswer(2, "3")
	ctl.RecordAnswer(4, " 1/2 ")
	res, err := ctl.Submit()
	if err != nil {
		t.Fatal(err)
	}
	return screens.Deps{Session: ctl, L: i18n.New("en")}, res
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0.0/10"},
		{5, "5.0/10"},
		{6.7, "6.7/10"},
		{10, "10.0/10"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestResults_SavesToHistory(t *testing.T) {
	deps, res := submitted(t)
	repo := &fakeResults{}
	deps.Results = repo
	s := New(deps, res)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected save command")
	}
	s.Update(cmd())

	if len(repo.saved) != 1 {
		t.Fatalf("saved %d records", len(repo.saved))
	}
	rec := repo.saved[0]
	if rec.Correct != 2 || rec.Total != 4 || rec.Score != 5.0 || rec.Source != "topic" {
		t.Errorf("unexpected record %+v", rec)
	}
	if len(rec.Answers) != 4 || rec.Answers[2].UserAnswer != nil {
		t.Errorf("unexpected answers %+v", rec.Answers)
	}
	if !s.saved || !strings.Contains(s.View(100, 60), i18n.SavedToHistory) {
		t.Error("view should confirm the save")
	}
}

func TestResults_SaveFailureIsQuiet(t *testing.T) {
	deps, res := submitted(t)
	deps.Results = &fakeResults{err: errors.New("disk full")}
	s := New(deps, res)

	s.Update(s.Init()())
	if s.saved {
		t.Error("failed save must not be reported as saved")
	}
}

func TestResults_NoStore(t *testing.T) {
	deps, res := submitted(t)
	if cmd := New(deps, res).Init(); cmd != nil {
		t.Error("expected no command without a store")
	}
}

func TestResults_View(t *testing.T) {
	deps, res := submitted(t)
	view := New(deps, res).View(100, 60)
	for _, want := range []string{"5.0/10", "You got 2 of 4 questions right.", i18n.BlankAnswer} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResults_EnterGoesHome(t *testing.T) {
	deps, res := submitted(t)
	s := New(deps, res)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatal("expected PopToRootMsg")
	}
	if deps.Session.Mode() != session.ModeHome || deps.Session.Quiz() != nil {
		t.Errorf("session not reset: %s", deps.Session.Mode())
	}
}

func TestScoreColor(t *testing.T) {
	if scoreColor(9) == scoreColor(2) {
		t.Error("high and low scores should differ in color")
	}
}
