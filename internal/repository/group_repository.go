package repository

import (
	"time"

	"studyhub_backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.StudyGroup) error {
	return r.DB.Create(group).Error
}

// FindByID 返回小组及其成员列表
func (r *GroupRepository) FindByID(id string) (*model.StudyGroup, error) {
	var group model.StudyGroup
	err := r.DB.Preload("Members").First(&group, "id = ?", id).Error
	return &group, err
}

func (r *GroupRepository) ListByUser(userID uint) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.DB.
		Joins("JOIN group_members gm ON gm.group_id = study_groups.id").
		Where("gm.user_id = ?", userID).
		Preload("Members").
		Order("study_groups.created_at desc").
		Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) AddMember(member *model.GroupMember) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	return r.DB.Create(member).Error
}

func (r *GroupRepository) FindMember(groupID string, userID uint) (*model.GroupMember, error) {
	var m model.GroupMember
	err := r.DB.Where("group_id = ? AND user_id = ?", groupID, userID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GroupRepository) RemoveMember(groupID string, userID uint) error {
	return r.DB.Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMember{}).Error
}

func (r *GroupRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StudyGroup{}, "id = ?", id).Error
	})
}
