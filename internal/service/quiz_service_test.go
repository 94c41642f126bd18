package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newQuizService(t *testing.T) (*service.QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewGroupRepository(db),
		nil,
	), db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: name + "@test.local", Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedGroup(t *testing.T, db *gorm.DB, creatorID uint, memberIDs ...uint) *model.StudyGroup {
	t.Helper()
	group := &model.StudyGroup{Name: "study group", CreatedBy: creatorID}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}

	members := []model.GroupMember{
		{GroupID: group.ID, UserID: creatorID, Role: model.GroupRoleAdmin, JoinedAt: time.Now()},
	}
	for _, id := range memberIDs {
		members = append(members, model.GroupMember{
			GroupID: group.ID, UserID: id, Role: model.GroupRoleMember, JoinedAt: time.Now(),
		})
	}
	if err := db.Create(&members).Error; err != nil {
		t.Fatalf("seed members: %v", err)
	}
	group.Members = members
	return group
}

func twoQuestionQuiz(maxAttempts int) service.CreateQuizReq {
	return service.CreateQuizReq{
		Title:       "Networking basics",
		MaxAttempts: maxAttempts,
		Questions: []service.QuizQuestionReq{
			{
				QuestionText: "Which layer does TCP live on?",
				Options: []service.QuizOptionReq{
					{OptionText: "Transport", IsCorrect: true},
					{OptionText: "Application"},
				},
			},
			{
				QuestionText: "Default HTTP port?",
				Options: []service.QuizOptionReq{
					{OptionText: "443"},
					{OptionText: "80", IsCorrect: true},
				},
			},
		},
	}
}

// correctAnswers 按题目顺序取每题的正确选项ID
func correctAnswers(quiz *model.Quiz) []string {
	answers := make([]string, len(quiz.Questions))
	for i, q := range quiz.Questions {
		for _, opt := range q.Options {
			if opt.IsCorrect {
				answers[i] = opt.ID
				break
			}
		}
	}
	return answers
}

func TestCreateQuizRequiresTitle(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	group := seedGroup(t, db, admin.ID)

	_, err := svc.CreateQuiz(group.ID, admin.ID, service.CreateQuizReq{})
	if !errors.Is(err, util.ErrTitleRequired) {
		t.Fatalf("expected title error, got %v", err)
	}
}

func TestCreateQuizDefaultsMaxAttempts(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	group := seedGroup(t, db, admin.ID)

	quiz, err := svc.CreateQuiz(group.ID, admin.ID, service.CreateQuizReq{Title: "no limit given"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if quiz.MaxAttempts != 1 {
		t.Fatalf("expected default maxAttempts 1, got %d", quiz.MaxAttempts)
	}
}

func TestSubmitQuizScoresAndRecordsAnswers(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	student := seedUser(t, db, "student")
	group := seedGroup(t, db, admin.ID, student.ID)

	created, err := svc.CreateQuiz(group.ID, admin.ID, twoQuestionQuiz(3))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	quiz, err := svc.GetQuiz(created.ID, group.ID, student.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	answers := correctAnswers(quiz)
	answers[1] = "bogus-option"

	score, submission, err := svc.SubmitQuiz(quiz.ID, group.ID, student.ID, answers)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if score != 50 {
		t.Fatalf("expected score 50, got %d", score)
	}
	if submission.Score != 50 || submission.Status != model.SubmissionCompleted {
		t.Fatalf("unexpected submission: %+v", submission)
	}
	if len(submission.Answers) != 2 {
		t.Fatalf("expected 2 recorded answers, got %d", len(submission.Answers))
	}
	if !submission.Answers[0].IsCorrect || submission.Answers[1].IsCorrect {
		t.Fatalf("unexpected answer marks: %+v", submission.Answers)
	}
}

func TestSubmitQuizAttemptLimit(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	student := seedUser(t, db, "student")
	group := seedGroup(t, db, admin.ID, student.ID)

	created, err := svc.CreateQuiz(group.ID, admin.ID, twoQuestionQuiz(2))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	quiz, _ := svc.GetQuiz(created.ID, group.ID, student.ID)
	answers := correctAnswers(quiz)

	for i := 0; i < 2; i++ {
		if _, _, err := svc.SubmitQuiz(quiz.ID, group.ID, student.ID, answers); err != nil {
			t.Fatalf("attempt %d failed: %v", i+1, err)
		}
	}

	_, _, err = svc.SubmitQuiz(quiz.ID, group.ID, student.ID, answers)
	var limitErr *util.AttemptLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected attempt limit error, got %v", err)
	}
	if limitErr.Limit != 2 || limitErr.Attempts != 2 {
		t.Fatalf("unexpected limit error: %+v", limitErr)
	}

	// 超限的提交不得落库
	view, err := svc.GetResults(quiz.ID, group.ID, student.ID)
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if len(view.Submissions) != 2 {
		t.Fatalf("expected 2 stored submissions, got %d", len(view.Submissions))
	}
}

func TestSubmitQuizResubmissionAppends(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	group := seedGroup(t, db, admin.ID)

	created, err := svc.CreateQuiz(group.ID, admin.ID, twoQuestionQuiz(5))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	quiz, _ := svc.GetQuiz(created.ID, group.ID, admin.ID)

	if _, _, err := svc.SubmitQuiz(quiz.ID, group.ID, admin.ID, []string{"", ""}); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, _, err := svc.SubmitQuiz(quiz.ID, group.ID, admin.ID, correctAnswers(quiz)); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	view, err := svc.GetResults(quiz.ID, group.ID, admin.ID)
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if len(view.Submissions) != 2 {
		t.Fatalf("resubmission must append, got %d submissions", len(view.Submissions))
	}
}

func TestSubmitQuizGates(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	outsider := seedUser(t, db, "outsider")
	group := seedGroup(t, db, admin.ID)

	created, err := svc.CreateQuiz(group.ID, admin.ID, twoQuestionQuiz(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, _, err := svc.SubmitQuiz("missing-quiz", group.ID, admin.ID, nil); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
	if _, _, err := svc.SubmitQuiz(created.ID, group.ID, outsider.ID, nil); !errors.Is(err, util.ErrNotGroupMember) {
		t.Fatalf("expected membership error, got %v", err)
	}
	// 测验属于别的小组时按不存在处理
	other := seedGroup(t, db, admin.ID)
	if _, _, err := svc.SubmitQuiz(created.ID, other.ID, admin.ID, nil); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found for wrong group, got %v", err)
	}
}

func TestGetResultsNewestFirst(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	group := seedGroup(t, db, admin.ID)

	created, err := svc.CreateQuiz(group.ID, admin.ID, twoQuestionQuiz(5))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	quizRepo := repository.NewQuizRepository(db)
	base := time.Now().Add(-time.Hour)
	for i, score := range []int{10, 90, 40} {
		sub := &model.QuizSubmission{
			QuizID:      created.ID,
			UserID:      admin.ID,
			Status:      model.SubmissionCompleted,
			Score:       score,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := quizRepo.AppendSubmission(created.ID, admin.ID, 5, sub); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	view, err := svc.GetResults(created.ID, group.ID, admin.ID)
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if len(view.Submissions) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(view.Submissions))
	}
	if view.Submissions[0].Score != 40 || view.Submissions[2].Score != 10 {
		t.Fatalf("expected newest first, got scores %d,%d,%d",
			view.Submissions[0].Score, view.Submissions[1].Score, view.Submissions[2].Score)
	}

	latest, err := svc.GetLatestResult(created.ID, group.ID, admin.ID)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if latest.Score != 40 {
		t.Fatalf("expected latest score 40, got %d", latest.Score)
	}
}

func TestGetResultsEmptyIsNotAnError(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	group := seedGroup(t, db, admin.ID)

	created, err := svc.CreateQuiz(group.ID, admin.ID, twoQuestionQuiz(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	view, err := svc.GetResults(created.ID, group.ID, admin.ID)
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if len(view.Submissions) != 0 {
		t.Fatalf("expected empty submissions, got %d", len(view.Submissions))
	}

	if _, err := svc.GetLatestResult(created.ID, group.ID, admin.ID); !errors.Is(err, util.ErrSubmissionNotFound) {
		t.Fatalf("expected submission not found, got %v", err)
	}
}

func TestDeleteQuizAuthorization(t *testing.T) {
	svc, db := newQuizService(t)
	admin := seedUser(t, db, "admin")
	creator := seedUser(t, db, "creator")
	bystander := seedUser(t, db, "bystander")
	group := seedGroup(t, db, admin.ID, creator.ID, bystander.ID)

	created, err := svc.CreateQuiz(group.ID, creator.ID, twoQuestionQuiz(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteQuiz(created.ID, group.ID, bystander.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for plain member, got %v", err)
	}

	// 创建者虽只是普通成员，也可删除自己的测验
	if err := svc.DeleteQuiz(created.ID, group.ID, creator.ID); err != nil {
		t.Fatalf("creator delete failed: %v", err)
	}
	if _, err := svc.GetQuiz(created.ID, group.ID, creator.ID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected quiz gone, got %v", err)
	}

	second, err := svc.CreateQuiz(group.ID, creator.ID, twoQuestionQuiz(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.DeleteQuiz(second.ID, group.ID, admin.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}
