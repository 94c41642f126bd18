package model

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionNotStarted SubmissionStatus = "not_started"
	SubmissionInProgress SubmissionStatus = "in-progress"
	SubmissionCompleted  SubmissionStatus = "completed"
)

// Quiz 小组测验，题目在创建后不可编辑
// swagger:model Quiz
type Quiz struct {
	UUIDBase
	GroupID     string         `gorm:"index;type:varchar(36);not null" json:"groupId"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	TimeLimit   int            `gorm:"default:0" json:"timeLimit"` // 分钟，仅作提示，服务端不强制
	MaxAttempts int            `gorm:"default:1" json:"maxAttempts"`
	CreatedBy   uint           `gorm:"index;type:bigint unsigned" json:"createdBy"`
	Questions   []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizQuestion struct {
	UUIDBase
	QuizID       string       `gorm:"index;type:varchar(36)" json:"quizId"`
	QuestionText string       `gorm:"type:text;not null" json:"questionText"`
	Order        int          `gorm:"default:0" json:"order"` // 题目顺序，答案按位置对应
	Options      []QuizOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

type QuizOption struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36)" json:"questionId"`
	OptionText string `gorm:"type:text" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Order      int    `gorm:"default:0" json:"order"`
}

func (QuizOption) TableName() string {
	return "quiz_options"
}

// QuizSubmission 用户的一次作答记录，按 (quiz,user) 只增不改
type QuizSubmission struct {
	UUIDBase
	QuizID      string                 `gorm:"index;type:varchar(36)" json:"quizId"`
	UserID      uint                   `gorm:"index;type:bigint unsigned" json:"userId"`
	User        *User                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status      SubmissionStatus       `gorm:"size:20;default:'completed'" json:"status"`
	Score       int                    `gorm:"default:0" json:"score"` // 0-100 的百分比
	SubmittedAt time.Time              `json:"submittedAt"`
	Answers     []QuizSubmissionAnswer `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

// QuizSubmissionAnswer 按题展开的作答明细
type QuizSubmissionAnswer struct {
	UUIDBase
	SubmissionID   string `gorm:"index;type:varchar(36)" json:"submissionId"`
	QuestionID     string `gorm:"index;type:varchar(36)" json:"questionId"`
	SelectedOption string `gorm:"size:36" json:"selectedOption"` // 选项ID，未作答为空串
	IsCorrect      bool   `gorm:"default:false" json:"isCorrect"`
}

func (QuizSubmissionAnswer) TableName() string {
	return "quiz_submission_answers"
}
