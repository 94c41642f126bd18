package service

import (
	"math"

	"studyhub_backend/internal/model"
)

// QuestionResult 单题判分结果
type QuestionResult struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
	IsCorrect      bool   `json:"isCorrect"`
}

// ScoreQuiz 纯判分函数：answers 按题目顺序逐位对应，answers[i] 为选中的
// 选项ID，未作答为空串。每题以第一个 isCorrect 的选项为标准答案，
// 选项ID 严格字符串相等才算对。得分为四舍五入后的百分比；
// 题目数为 0 时约定返回 0，避免除零。
func ScoreQuiz(questions []model.QuizQuestion, answers []string) (int, []QuestionResult) {
	results := make([]QuestionResult, len(questions))
	correctCount := 0

	for i, q := range questions {
		userAnswer := ""
		if i < len(answers) {
			userAnswer = answers[i]
		}

		correctOption := ""
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correctOption = opt.ID
				break
			}
		}

		isCorrect := userAnswer != "" && userAnswer == correctOption
		if isCorrect {
			correctCount++
		}

		results[i] = QuestionResult{
			QuestionID:     q.ID,
			SelectedOption: userAnswer,
			IsCorrect:      isCorrect,
		}
	}

	if len(questions) == 0 {
		return 0, results
	}

	score := int(math.Round(float64(correctCount) / float64(len(questions)) * 100))
	return score, results
}
