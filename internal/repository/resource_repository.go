package repository

import (
	"studyhub_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id string) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.Preload("Uploader").First(&resource, "id = ?", id).Error
	return &resource, err
}

func (r *ResourceRepository) ListByGroup(groupID string) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Preload("Uploader").
		Where("group_id = ?", groupID).
		Order("created_at desc").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) IncrementDownloadCount(id string) error {
	return r.DB.Model(&model.Resource{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + 1")).
		Error
}

func (r *ResourceRepository) Delete(id string) error {
	return r.DB.Delete(&model.Resource{}, "id = ?", id).Error
}
