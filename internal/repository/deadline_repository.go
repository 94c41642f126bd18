package repository

import (
	"studyhub_backend/internal/model"

	"gorm.io/gorm"
)

type DeadlineRepository struct {
	DB *gorm.DB
}

func NewDeadlineRepository(db *gorm.DB) *DeadlineRepository {
	return &DeadlineRepository{DB: db}
}

func (r *DeadlineRepository) Create(deadline *model.Deadline) error {
	return r.DB.Create(deadline).Error
}

func (r *DeadlineRepository) FindByID(id string) (*model.Deadline, error) {
	var deadline model.Deadline
	err := r.DB.First(&deadline, "id = ?", id).Error
	return &deadline, err
}

func (r *DeadlineRepository) ListByGroup(groupID string) ([]model.Deadline, error) {
	var deadlines []model.Deadline
	err := r.DB.Where("group_id = ?", groupID).
		Order("due_date asc").
		Find(&deadlines).Error
	return deadlines, err
}

func (r *DeadlineRepository) Update(deadline *model.Deadline) error {
	return r.DB.Save(deadline).Error
}

func (r *DeadlineRepository) Delete(id string) error {
	return r.DB.Delete(&model.Deadline{}, "id = ?", id).Error
}
