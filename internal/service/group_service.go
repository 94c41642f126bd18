package service

import (
	"errors"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
)

type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository) *GroupService {
	return &GroupService{
		GroupRepo: groupRepo,
		UserRepo:  userRepo,
	}
}

type CreateGroupReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateGroup 建组，创建者自动成为组管理员
func (s *GroupService) CreateGroup(creatorID uint, req CreateGroupReq) (*model.StudyGroup, error) {
	group := &model.StudyGroup{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   creatorID,
	}

	if err := s.GroupRepo.Create(group); err != nil {
		return nil, err
	}

	member := &model.GroupMember{
		GroupID:  group.ID,
		UserID:   creatorID,
		Role:     model.GroupRoleAdmin,
		JoinedAt: time.Now(),
	}
	if err := s.GroupRepo.AddMember(member); err != nil {
		return nil, err
	}

	group.Members = []model.GroupMember{*member}
	return group, nil
}

func (s *GroupService) GetGroup(groupID string, userID uint) (*model.StudyGroup, error) {
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

func (s *GroupService) ListMyGroups(userID uint) ([]model.StudyGroup, error) {
	return s.GroupRepo.ListByUser(userID)
}

func (s *GroupService) JoinGroup(groupID string, userID uint) (*model.GroupMember, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}

	if group.IsActiveMember(userID) {
		return nil, util.ErrAlreadyMember
	}

	member := &model.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		Role:     model.GroupRoleMember,
		JoinedAt: time.Now(),
	}
	if err := s.GroupRepo.AddMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *GroupService) LeaveGroup(groupID string, userID uint) error {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}
	if !group.IsActiveMember(userID) {
		return util.ErrNotGroupMember
	}
	return s.GroupRepo.RemoveMember(groupID, userID)
}

// DeleteGroup 组管理员解散小组，连同成员关系一并删除
func (s *GroupService) DeleteGroup(groupID string, userID uint) error {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}
	if !group.IsAdmin(userID) {
		return util.ErrPermissionDenied
	}
	return s.GroupRepo.Delete(groupID)
}

// RemoveMember 组管理员移除成员；不能移除创建者
func (s *GroupService) RemoveMember(groupID string, adminID, targetID uint) error {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}

	if !group.IsAdmin(adminID) {
		return util.ErrPermissionDenied
	}
	if targetID == group.CreatedBy {
		return util.ErrPermissionDenied
	}
	if !group.IsActiveMember(targetID) {
		return util.ErrNotGroupMember
	}

	return s.GroupRepo.RemoveMember(groupID, targetID)
}
