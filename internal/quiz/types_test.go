package quiz

import "testing"

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in      string
		want    Grade
		wantErr bool
	}{
		{"7", Grade7, false},
		{"Grade 7", Grade7, false},
		{"grade 9", Grade9, false},
		{"Lớp 6", Grade6, false},
		{"lop 8", Grade8, false},
		{"5", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGrade(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGrade(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGrade(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGradeString(t *testing.T) {
	if Grade7.String() != "Grade 7" {
		t.Errorf("String() = %q", Grade7.String())
	}
	if len(AllGrades()) != 4 {
		t.Errorf("expected four grades")
	}
}

func TestNewQuiz_Renumbers(t *testing.T) {
	ans := "stale"
	qz := NewQuiz("t", Grade7, SourceTopic, []Question{
		{ID: 9, Text: "a", CorrectAnswer: "1", UserAnswer: &ans},
		{ID: 3, Text: "b", CorrectAnswer: "2"},
	})
	if qz.ID == "" {
		t.Error("expected a quiz ID")
	}
	for i, q := range qz.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d", i, q.ID)
		}
		if q.UserAnswer != nil {
			t.Errorf("question %d kept a user answer", q.ID)
		}
	}
}

func TestQuiz_SetAnswer(t *testing.T) {
	qz := NewQuiz("t", Grade7, SourceTopic, []Question{{Text: "a", CorrectAnswer: "1"}})
	if !qz.SetAnswer(1, "1") {
		t.Fatal("expected SetAnswer to find question 1")
	}
	if qz.Questions[0].Answer() != "1" {
		t.Errorf("Answer() = %q", qz.Questions[0].Answer())
	}
	if qz.SetAnswer(2, "x") {
		t.Error("expected unknown ID to be refused")
	}
}
