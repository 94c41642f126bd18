package model

import (
	"time"
)

type GroupRole string

const (
	GroupRoleMember GroupRole = "member"
	GroupRoleAdmin  GroupRole = "admin"
)

// StudyGroup 学习小组，测验/笔记/资源/截止日期的归属单位
// swagger:model StudyGroup
type StudyGroup struct {
	UUIDBase
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	CreatedBy   uint          `gorm:"index;type:bigint unsigned" json:"createdBy"`
	Members     []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

func (StudyGroup) TableName() string {
	return "study_groups"
}

// GroupMember 小组成员，role 为 member 或 admin
type GroupMember struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID  string    `gorm:"uniqueIndex:idx_group_user;type:varchar(36)" json:"groupId"`
	UserID   uint      `gorm:"uniqueIndex:idx_group_user;type:bigint unsigned" json:"userId"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role     GroupRole `gorm:"size:20;default:'member'" json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

// IsActiveMember 判断用户是否为小组活跃成员（member 或 admin 均算）
func (g *StudyGroup) IsActiveMember(userID uint) bool {
	for _, m := range g.Members {
		if m.UserID == userID && (m.Role == GroupRoleMember || m.Role == GroupRoleAdmin) {
			return true
		}
	}
	return false
}

// IsAdmin 判断用户是否为小组管理员
func (g *StudyGroup) IsAdmin(userID uint) bool {
	for _, m := range g.Members {
		if m.UserID == userID && m.Role == GroupRoleAdmin {
			return true
		}
	}
	return false
}
