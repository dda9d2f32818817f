package learning

import "math"

// Grade returns the percentage of questions answered correctly, rounded half
// up. Unanswered questions count as wrong; answers to unknown questions are
// ignored.
func Grade(quiz Quiz, answers map[string]int) int {
	if len(quiz.Questions) == 0 {
		return 0
	}

	correct := 0
	for _, q := range quiz.Questions {
		if a, ok := answers[q.ID]; ok && a == q.Answer {
			correct++
		}
	}

	return int(math.Floor(float64(correct)*100/float64(len(quiz.Questions)) + 0.5))
}

// QuizBonus is the XP earned for a quiz score.
func QuizBonus(score int) int {
	return max(0, int(math.Floor(float64(score)*0.1+0.5)))
}
