package model

import (
	"time"
)

// Deadline 小组截止日期，可以关联一个测验；测验删除时不做级联清理，
// 关联失效由读取方容忍（见仓库文档）
// swagger:model Deadline
type Deadline struct {
	UUIDBase
	GroupID     string    `gorm:"index;type:varchar(36);not null" json:"groupId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"dueDate"`
	QuizID      *string   `gorm:"index;type:varchar(36)" json:"quizId,omitempty"`
	CreatedBy   uint      `gorm:"index;type:bigint unsigned" json:"createdBy"`
}

func (Deadline) TableName() string {
	return "deadlines"
}
