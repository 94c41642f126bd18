package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo  *repository.QuizRepository
	GroupRepo *repository.GroupRepository
	Redis     *redis.Client
}

func NewQuizService(quizRepo *repository.QuizRepository, groupRepo *repository.GroupRepository, rdb *redis.Client) *QuizService {
	return &QuizService{
		QuizRepo:  quizRepo,
		GroupRepo: groupRepo,
		Redis:     rdb,
	}
}

const (
	quizListKeyPrefix = "group_quizzes:"
	quizListCacheTTL  = 5 * time.Minute
)

type QuizOptionReq struct {
	OptionText string `json:"optionText"`
	IsCorrect  bool   `json:"isCorrect"`
}

type QuizQuestionReq struct {
	QuestionText string          `json:"questionText" binding:"required"`
	Options      []QuizOptionReq `json:"options"`
}

type CreateQuizReq struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	TimeLimit   int               `json:"timeLimit"`
	MaxAttempts int               `json:"maxAttempts"`
	Questions   []QuizQuestionReq `json:"questions"`
}

// QuizResultView 测验元信息加上当前用户的作答记录（最新在前）
type QuizResultView struct {
	Quiz        *model.Quiz            `json:"quiz"`
	Submissions []model.QuizSubmission `json:"submissions"`
}

// loadGroupForMember 取小组并校验成员资格。小组不存在返回 ErrGroupNotFound
// （fails closed：而不是静默的“非成员”）；非活跃成员返回 ErrNotGroupMember。
func (s *QuizService) loadGroupForMember(groupID string, userID uint) (*model.StudyGroup, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}
	if !group.IsActiveMember(userID) {
		return nil, util.ErrNotGroupMember
	}
	return group, nil
}

func (s *QuizService) CreateQuiz(groupID string, authorID uint, req CreateQuizReq) (*model.Quiz, error) {
	if _, err := s.loadGroupForMember(groupID, authorID); err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, util.ErrTitleRequired
	}

	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	quiz := &model.Quiz{
		GroupID:     groupID,
		Title:       req.Title,
		Description: req.Description,
		TimeLimit:   req.TimeLimit,
		MaxAttempts: maxAttempts,
		CreatedBy:   authorID,
	}

	for i, qReq := range req.Questions {
		question := model.QuizQuestion{
			QuestionText: qReq.QuestionText,
			Order:        i,
		}
		for j, oReq := range qReq.Options {
			question.Options = append(question.Options, model.QuizOption{
				OptionText: oReq.OptionText,
				IsCorrect:  oReq.IsCorrect,
				Order:      j,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}

	s.invalidateQuizList(groupID)
	return quiz, nil
}

// loadQuiz 取测验；不存在或不属于该小组都按 ErrQuizNotFound 处理
func (s *QuizService) loadQuiz(quizID, groupID string) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if quiz.GroupID != groupID {
		return nil, util.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *QuizService) GetQuiz(quizID, groupID string, userID uint) (*model.Quiz, error) {
	quiz, err := s.loadQuiz(quizID, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(groupID string, userID uint) ([]model.Quiz, error) {
	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		cached, err := s.Redis.Get(context.Background(), quizListKeyPrefix+groupID).Result()
		if err == nil {
			var quizzes []model.Quiz
			if json.Unmarshal([]byte(cached), &quizzes) == nil {
				return quizzes, nil
			}
		}
	}

	quizzes, err := s.QuizRepo.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(quizzes); err == nil {
			s.Redis.Set(context.Background(), quizListKeyPrefix+groupID, data, quizListCacheTTL)
		}
	}

	return quizzes, nil
}

// SubmitQuiz 按固定顺序过闸：测验存在 -> 小组存在 -> 成员资格 ->
// 次数上限 -> 判分 -> 追加作答记录。重复提交一律追加（不覆盖旧记录），
// 次数即该用户已存的记录数；上限校验和插入在同一事务里完成。
func (s *QuizService) SubmitQuiz(quizID, groupID string, userID uint, answers []string) (int, *model.QuizSubmission, error) {
	quiz, err := s.loadQuiz(quizID, groupID)
	if err != nil {
		return 0, nil, err
	}

	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return 0, nil, err
	}

	maxAttempts := quiz.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	score, results := ScoreQuiz(quiz.Questions, answers)

	submission := &model.QuizSubmission{
		QuizID:      quizID,
		UserID:      userID,
		Status:      model.SubmissionCompleted,
		Score:       score,
		SubmittedAt: time.Now(),
	}
	for _, r := range results {
		submission.Answers = append(submission.Answers, model.QuizSubmissionAnswer{
			QuestionID:     r.QuestionID,
			SelectedOption: r.SelectedOption,
			IsCorrect:      r.IsCorrect,
		})
	}

	if err := s.QuizRepo.AppendSubmission(quizID, userID, maxAttempts, submission); err != nil {
		return 0, nil, err
	}

	return score, submission, nil
}

// GetResults 当前用户的全部作答，最新在前；没有记录返回空列表不算错误
func (s *QuizService) GetResults(quizID, groupID string, userID uint) (*QuizResultView, error) {
	quiz, err := s.loadQuiz(quizID, groupID)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}

	submissions, err := s.QuizRepo.ListSubmissionsByUser(quizID, userID)
	if err != nil {
		return nil, err
	}

	return &QuizResultView{Quiz: quiz, Submissions: submissions}, nil
}

// GetLatestResult 单条读取路径：没有作答记录时返回 ErrSubmissionNotFound
func (s *QuizService) GetLatestResult(quizID, groupID string, userID uint) (*model.QuizSubmission, error) {
	if _, err := s.loadQuiz(quizID, groupID); err != nil {
		return nil, err
	}

	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}

	submission, err := s.QuizRepo.FindLatestSubmission(quizID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

// DeleteQuiz 仅小组管理员或测验创建者可删；不回收引用该测验的截止日期
func (s *QuizService) DeleteQuiz(quizID, groupID string, userID uint) error {
	quiz, err := s.loadQuiz(quizID, groupID)
	if err != nil {
		return err
	}

	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}

	if !group.IsAdmin(userID) && quiz.CreatedBy != userID {
		return util.ErrPermissionDenied
	}

	if err := s.QuizRepo.Delete(quizID); err != nil {
		return err
	}

	s.invalidateQuizList(groupID)
	return nil
}

func (s *QuizService) invalidateQuizList(groupID string) {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), quizListKeyPrefix+groupID)
	}
}
