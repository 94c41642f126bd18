package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

// FindByID 返回测验及按顺序排好的题目和选项
func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.`order` asc, quiz_questions.created_at asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_options.`order` asc, quiz_options.created_at asc")
		}).
		First(&quiz, "id = ?", id).Error
	return &quiz, err
}

func (r *QuizRepository) ListByGroup(groupID string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.`order` asc, quiz_questions.created_at asc")
		}).
		Preload("Questions.Options").
		Where("group_id = ?", groupID).
		Order("created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

// Delete 删除测验及其题目、选项、作答记录
func (r *QuizRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []string
		if err := tx.Model(&model.QuizQuestion{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.QuizOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}

		var submissionIDs []string
		if err := tx.Model(&model.QuizSubmission{}).Where("quiz_id = ?", id).Pluck("id", &submissionIDs).Error; err != nil {
			return err
		}
		if len(submissionIDs) > 0 {
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&model.QuizSubmissionAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizSubmission{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
}

func (r *QuizRepository) CountSubmissions(quizID string, userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizSubmission{}).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Count(&count).Error
	return count, err
}

// AppendSubmission 在同一事务里做次数校验和插入。先对测验行加写锁，
// 把同一 (quiz,user) 的并发提交串行化，避免两个请求都读到提交前的次数。
// SQLite 单写者，无需行锁。
func (r *QuizRepository) AppendSubmission(quizID string, userID uint, maxAttempts int, submission *model.QuizSubmission) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		locked := tx
		if tx.Dialector.Name() == "mysql" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var quiz model.Quiz
		if err := locked.First(&quiz, "id = ?", quizID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.QuizSubmission{}).
			Where("quiz_id = ? AND user_id = ?", quizID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if int(count) >= maxAttempts {
			return &util.AttemptLimitError{Limit: maxAttempts, Attempts: int(count)}
		}

		return tx.Create(submission).Error
	})
}

// ListSubmissionsByUser 返回某用户在某测验下的全部作答，最新的在前
func (r *QuizRepository) ListSubmissionsByUser(quizID string, userID uint) ([]model.QuizSubmission, error) {
	var submissions []model.QuizSubmission
	err := r.DB.
		Preload("Answers").
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("submitted_at desc").
		Find(&submissions).Error
	return submissions, err
}

func (r *QuizRepository) FindLatestSubmission(quizID string, userID uint) (*model.QuizSubmission, error) {
	var submission model.QuizSubmission
	err := r.DB.
		Preload("Answers").
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("submitted_at desc").
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
