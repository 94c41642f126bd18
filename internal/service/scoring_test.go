package service_test

import (
	"testing"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
)

func question(id string, correctOptionID string, optionIDs ...string) model.QuizQuestion {
	q := model.QuizQuestion{}
	q.ID = id
	for _, oid := range optionIDs {
		opt := model.QuizOption{IsCorrect: oid == correctOptionID}
		opt.ID = oid
		q.Options = append(q.Options, opt)
	}
	return q
}

func TestScoreQuizHalfCorrect(t *testing.T) {
	questions := []model.QuizQuestion{
		question("q1", "o2", "o1", "o2"),
		question("q2", "o3", "o3", "o4"),
	}

	score, results := service.ScoreQuiz(questions, []string{"o2", "o4"})
	if score != 50 {
		t.Fatalf("expected score 50, got %d", score)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].IsCorrect || results[1].IsCorrect {
		t.Fatalf("unexpected per-question results: %+v", results)
	}
}

func TestScoreQuizAllCorrect(t *testing.T) {
	questions := []model.QuizQuestion{
		question("q1", "o1", "o1", "o2"),
		question("q2", "o3", "o3", "o4"),
	}

	score, _ := service.ScoreQuiz(questions, []string{"o1", "o3"})
	if score != 100 {
		t.Fatalf("expected score 100, got %d", score)
	}
}

func TestScoreQuizRounding(t *testing.T) {
	three := []model.QuizQuestion{
		question("q1", "a", "a", "b"),
		question("q2", "a", "a", "b"),
		question("q3", "a", "a", "b"),
	}

	if score, _ := service.ScoreQuiz(three, []string{"a", "b", "b"}); score != 33 {
		t.Fatalf("expected 1/3 to score 33, got %d", score)
	}
	if score, _ := service.ScoreQuiz(three, []string{"a", "a", "b"}); score != 67 {
		t.Fatalf("expected 2/3 to score 67, got %d", score)
	}

	// 12.5% 取整到 13
	eight := make([]model.QuizQuestion, 8)
	answers := make([]string, 8)
	for i := range eight {
		eight[i] = question("q", "a", "a", "b")
		answers[i] = "b"
	}
	answers[0] = "a"
	if score, _ := service.ScoreQuiz(eight, answers); score != 13 {
		t.Fatalf("expected 1/8 to score 13, got %d", score)
	}
}

func TestScoreQuizNoQuestions(t *testing.T) {
	score, results := service.ScoreQuiz(nil, []string{"o1"})
	if score != 0 {
		t.Fatalf("expected score 0 for empty quiz, got %d", score)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestScoreQuizUnansweredAndUnknownOptions(t *testing.T) {
	questions := []model.QuizQuestion{
		question("q1", "o1", "o1", "o2"),
		question("q2", "o3", "o3", "o4"),
		question("q3", "o5", "o5", "o6"),
	}

	// 空串、不存在的选项ID、缺位的答案都不得分
	score, results := service.ScoreQuiz(questions, []string{"", "bogus"})
	if score != 0 {
		t.Fatalf("expected score 0, got %d", score)
	}
	for i, r := range results {
		if r.IsCorrect {
			t.Fatalf("question %d should not be correct: %+v", i, r)
		}
	}
	if results[2].SelectedOption != "" {
		t.Fatalf("missing answer should record empty selection, got %q", results[2].SelectedOption)
	}
}

func TestScoreQuizNoCorrectOptionNeverMatches(t *testing.T) {
	q := model.QuizQuestion{}
	q.ID = "q1"
	opt := model.QuizOption{IsCorrect: false}
	opt.ID = "o1"
	q.Options = []model.QuizOption{opt}

	score, results := service.ScoreQuiz([]model.QuizQuestion{q}, []string{"o1"})
	if score != 0 || results[0].IsCorrect {
		t.Fatalf("question without correct option must never score, got score=%d results=%+v", score, results)
	}
}
