package quiz

import (
	"math"
	"strings"
)

// IsCorrect compares the student answer with the key after trimming,
// ignoring case. A missing answer counts as "".
func IsCorrect(q Question) bool {
	return strings.EqualFold(
		strings.TrimSpace(q.Answer()),
		strings.TrimSpace(q.CorrectAnswer),
	)
}

// Score grades every question of qz. It does not modify the quiz.
func Score(qz *Quiz) *Result {
	res := &Result{Quiz: qz}
	if qz == nil {
		return res
	}

	res.TotalQuestions = len(qz.Questions)
	res.Outcomes = make([]Outcome, 0, len(qz.Questions))
	for _, q := range qz.Questions {
		ok := IsCorrect(q)
		if ok {
			res.CorrectCount++
		}
		res.Outcomes = append(res.Outcomes, Outcome{QuestionID: q.ID, Correct: ok})
	}
	res.Score = ScaleScore(res.CorrectCount, res.TotalQuestions)
	return res
}

// ScaleScore maps correct/total onto 0-10, rounded to one decimal.
// A zero total yields 0.
func ScaleScore(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100) / 10
}
