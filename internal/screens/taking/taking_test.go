package taking

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/screens/results"
	"github.com/dakia/mathquiz/internal/session"
)

func startedDeps(t *testing.T) screens.Deps {
	t.Helper()
	ctl := session.NewController()
	if err := ctl.Select(session.ModeCreatingManually); err != nil {
		t.Fatal(err)
	}
	q := quiz.NewQuiz("Self-made exercise", quiz.Grade7, quiz.SourceManual, []quiz.Question{
		{Text: "2 + 2 = ?", CorrectAnswer: "4"},
		{Text: "Capital of France?", CorrectAnswer: "Paris"},
	})
	if err := ctl.Start(q); err != nil {
		t.Fatal(err)
	}
	return screens.Deps{Session: ctl, L: i18n.New("en")}
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func TestTaking_RecordsAnswers(t *testing.T) {
	deps := startedDeps(t)
	var s screen.Screen = New(deps)

	s = typeText(s, " 4 ")
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = typeText(s, "paris")

	qs := deps.Session.Quiz().Questions
	if qs[0].UserAnswer == nil || *qs[0].UserAnswer != " 4 " {
		t.Errorf("answer 1 = %v", qs[0].UserAnswer)
	}
	if qs[1].UserAnswer == nil || *qs[1].UserAnswer != "paris" {
		t.Errorf("answer 2 = %v", qs[1].UserAnswer)
	}
	if got := s.(*TakingScreen).answered(); got != 2 {
		t.Errorf("answered = %d, want 2", got)
	}
}

func TestTaking_FocusWraps(t *testing.T) {
	s := New(startedDeps(t))
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != s.submitIndex() {
		t.Fatalf("focus = %d, want submit", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != 0 {
		t.Fatalf("focus = %d, want 0", s.focus)
	}
}

func TestTaking_SubmitShowsResults(t *testing.T) {
	deps := startedDeps(t)
	var s screen.Screen = New(deps)
	s = typeText(s, "4")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected navigation")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := rep.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", rep.Screen)
	}

	if deps.Session.Mode() != session.ModeResults {
		t.Fatalf("mode = %s", deps.Session.Mode())
	}
	res := deps.Session.Result()
	if res.CorrectCount != 1 || res.TotalQuestions != 2 || res.Score != 5.0 {
		t.Errorf("result = %d/%d %.1f", res.CorrectCount, res.TotalQuestions, res.Score)
	}
}

func TestTaking_EnterOnButtonSubmits(t *testing.T) {
	deps := startedDeps(t)
	s := New(deps)
	s.setFocus(s.submitIndex())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation")
	}
	if res := deps.Session.Result(); res == nil || res.Score != 0 {
		t.Errorf("unanswered quiz should score 0, got %+v", res)
	}
}

func TestTaking_View(t *testing.T) {
	s := New(startedDeps(t))
	if s.View(100, 40) == "" {
		t.Error("expected non-empty view")
	}
	if s.Title() != "Self-made exercise" {
		t.Errorf("title = %q", s.Title())
	}
}
