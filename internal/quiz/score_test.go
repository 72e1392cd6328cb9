package quiz

import (
	"testing"
)

func answered(text, key, answer string) Question {
	return Question{Text: text, CorrectAnswer: key, UserAnswer: &answer}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name   string
		answer *string
		want   bool
	}{
		{"exact", strPtr("Paris"), true},
		{"padded lower", strPtr("  paris "), true},
		{"upper", strPtr("PARIS"), true},
		{"different", strPtr("Lyon"), false},
		{"empty", strPtr(""), false},
		{"unattempted", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ID: 1, Text: "Capital of France?", CorrectAnswer: "Paris", UserAnswer: tt.answer}
			if got := IsCorrect(q); got != tt.want {
				t.Errorf("IsCorrect(%v) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestIsCorrect_KeyIsTrimmed(t *testing.T) {
	q := answered("2 + 2 = ?", " 4 ", "4")
	if !IsCorrect(q) {
		t.Error("expected padded key to match")
	}
}

func TestScore_Empty(t *testing.T) {
	res := Score(NewQuiz("empty", Grade7, SourceTopic, nil))
	if res.TotalQuestions != 0 || res.CorrectCount != 0 {
		t.Fatalf("got %d/%d, want 0/0", res.CorrectCount, res.TotalQuestions)
	}
	if res.Score != 0 {
		t.Errorf("Score = %v, want 0", res.Score)
	}
}

func TestScore_NineOfFifteen(t *testing.T) {
	var qs []Question
	for i := 0; i < 15; i++ {
		qs = append(qs, Question{Text: "q", CorrectAnswer: "x"})
	}
	qz := NewQuiz("t", Grade7, SourceTopic, qs)
	for i := 1; i <= 15; i++ {
		ans := "wrong"
		if i <= 9 {
			ans = []string{"x", " X ", "X"}[i%3]
		}
		qz.SetAnswer(i, ans)
	}

	res := Score(qz)
	if res.TotalQuestions != 15 {
		t.Errorf("TotalQuestions = %d, want 15", res.TotalQuestions)
	}
	if res.CorrectCount != 9 {
		t.Errorf("CorrectCount = %d, want 9", res.CorrectCount)
	}
	if res.Score != 6.0 {
		t.Errorf("Score = %v, want 6.0", res.Score)
	}
	if res.WrongCount() != 6 {
		t.Errorf("WrongCount = %d, want 6", res.WrongCount())
	}
	if len(res.Outcomes) != 15 || !res.Outcomes[0].Correct || res.Outcomes[14].Correct {
		t.Errorf("unexpected outcomes: %+v", res.Outcomes)
	}
	if res.Quiz != qz {
		t.Error("expected result to reference the scored quiz")
	}
}

func TestScaleScore(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 10},
		{1, 3, 3.3},
		{2, 3, 6.7},
		{9, 15, 6},
		{7, 15, 4.7},
		{1, 15, 0.7},
		{14, 15, 9.3},
	}
	for _, tt := range tests {
		got := ScaleScore(tt.correct, tt.total)
		if got != tt.want {
			t.Errorf("ScaleScore(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	for total := 0; total <= MaxQuestions; total++ {
		for correct := 0; correct <= total; correct++ {
			qs := make([]Question, total)
			for i := range qs {
				qs[i] = Question{Text: "q", CorrectAnswer: "a"}
			}
			qz := NewQuiz("t", Grade8, SourceManual, qs)
			for id := 1; id <= correct; id++ {
				qz.SetAnswer(id, "a")
			}
			res := Score(qz)
			if res.CorrectCount != correct || res.TotalQuestions != total {
				t.Fatalf("got %d/%d, want %d/%d", res.CorrectCount, res.TotalQuestions, correct, total)
			}
			if res.Score < 0 || res.Score > 10 {
				t.Fatalf("score %v out of range for %d/%d", res.Score, correct, total)
			}
		}
	}
}

func strPtr(s string) *string { return &s }
