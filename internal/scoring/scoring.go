// Package scoring computes quiz results from a question set and the answers a
// user selected. Best-score retention is a persistence concern and lives in the
// quiz repository, not here.
package scoring

import (
	"math"

	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
)

// Score counts the answers matching their question's correct index. Indices
// absent from answers never match, so unanswered questions count as incorrect.
func Score(questions []aigen.Question, answers map[int]int) int {
	correct := 0
	for i, q := range questions {
		if selected, ok := answers[i]; ok && selected == q.Correct {
			correct++
		}
	}
	return correct
}

// Percentage rounds score/total to a whole percentage. A zero total yields 0;
// callers presenting percentages should not ask for one without questions.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
