package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	GroupRepo    *repository.GroupRepository
	Storage      *StorageService
	Redis        *redis.Client
}

func NewResourceService(resourceRepo *repository.ResourceRepository, groupRepo *repository.GroupRepository, storage *StorageService, rdb *redis.Client) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		GroupRepo:    groupRepo,
		Storage:      storage,
		Redis:        rdb,
	}
}

const downloadCountKeyPrefix = "resource_downloads:"

type ResourceReq struct {
	Title       string             `form:"title" binding:"required"`
	Description string             `form:"description"`
	Type        model.ResourceType `form:"type"`
}

func (s *ResourceService) loadGroupForMember(groupID string, userID uint) (*model.StudyGroup, error) {
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

// UploadResource 组员向小组上传资料文件
func (s *ResourceService) UploadResource(ctx context.Context, groupID string, uploaderID uint, file *multipart.FileHeader, req ResourceReq) (*model.Resource, error) {
	if _, err := s.loadGroupForMember(groupID, uploaderID); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := "resources/" + time.Now().Format("20060102150405") + "_" + model.GenerateUUID()[:8] + ext

	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	resourceType := req.Type
	if resourceType == "" {
		resourceType = model.ResourceDoc
	}

	resource := &model.Resource{
		GroupID:     groupID,
		UploaderID:  uploaderID,
		Title:       req.Title,
		Description: req.Description,
		Type:        resourceType,
		FileURL:     url,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) ListResources(groupID string, userID uint) ([]model.Resource, error) {
	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}
	return s.ResourceRepo.ListByGroup(groupID)
}

// Download 返回资源并累计下载数；热点计数走 redis，落库异步容忍丢失
func (s *ResourceService) Download(groupID, resourceID string, userID uint) (*model.Resource, error) {
	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}

	resource, err := s.ResourceRepo.FindByID(resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResourceNotFound
		}
		return nil, err
	}
	if resource.GroupID != groupID {
		return nil, util.ErrResourceNotFound
	}

	if s.Redis != nil {
		s.Redis.Incr(context.Background(), downloadCountKeyPrefix+resourceID)
	}
	go s.ResourceRepo.IncrementDownloadCount(resourceID)

	return resource, nil
}

// DeleteResource 组管理员或上传者可删
func (s *ResourceService) DeleteResource(ctx context.Context, groupID, resourceID string, userID uint) error {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}

	resource, err := s.ResourceRepo.FindByID(resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrResourceNotFound
		}
		return err
	}
	if resource.GroupID != groupID {
		return util.ErrResourceNotFound
	}

	if !group.IsAdmin(userID) && resource.UploaderID != userID {
		return util.ErrPermissionDenied
	}

	return s.ResourceRepo.Delete(resourceID)
}
