package service

import (
	"errors"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
)

type DeadlineService struct {
	DeadlineRepo *repository.DeadlineRepository
	GroupRepo    *repository.GroupRepository
}

func NewDeadlineService(deadlineRepo *repository.DeadlineRepository, groupRepo *repository.GroupRepository) *DeadlineService {
	return &DeadlineService{
		DeadlineRepo: deadlineRepo,
		GroupRepo:    groupRepo,
	}
}

type DeadlineReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	QuizID      *string   `json:"quizId"`
}

func (s *DeadlineService) loadGroupForMember(groupID string, userID uint) (*model.StudyGroup, error) {
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

func (s *DeadlineService) CreateDeadline(groupID string, creatorID uint, req DeadlineReq) (*model.Deadline, error) {
	if _, err := s.loadGroupForMember(groupID, creatorID); err != nil {
		return nil, err
	}

	deadline := &model.Deadline{
		GroupID:     groupID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		QuizID:      req.QuizID,
		CreatedBy:   creatorID,
	}
	if err := s.DeadlineRepo.Create(deadline); err != nil {
		return nil, err
	}
	return deadline, nil
}

func (s *DeadlineService) ListDeadlines(groupID string, userID uint) ([]model.Deadline, error) {
	if _, err := s.loadGroupForMember(groupID, userID); err != nil {
		return nil, err
	}
	return s.DeadlineRepo.ListByGroup(groupID)
}

func (s *DeadlineService) UpdateDeadline(groupID, deadlineID string, userID uint, req DeadlineReq) (*model.Deadline, error) {
	group, err := s.loadGroupForMember(groupID, userID)
	if err != nil {
		return nil, err
	}

	deadline, err := s.DeadlineRepo.FindByID(deadlineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDeadlineNotFound
		}
		return nil, err
	}
	if deadline.GroupID != groupID {
		return nil, util.ErrDeadlineNotFound
	}

	if !group.IsAdmin(userID) && deadline.CreatedBy != userID {
		return nil, util.ErrPermissionDenied
	}

	deadline.Title = req.Title
	deadline.Description = req.Description
	deadline.DueDate = req.DueDate
	deadline.QuizID = req.QuizID
	if err := s.DeadlineRepo.Update(deadline); err != nil {
		return nil, err
	}
	return deadline, nil
}

func (s *DeadlineService) DeleteDeadline(groupID, deadlineID string, userID uint) error {
	group, err := s.loadGroupForMember(groupID, userID)
	if err != nil {
		return err
	}

	deadline, err := s.DeadlineRepo.FindByID(deadlineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDeadlineNotFound
		}
		return err
	}
	if deadline.GroupID != groupID {
		return util.ErrDeadlineNotFound
	}

	if !group.IsAdmin(userID) && deadline.CreatedBy != userID {
		return util.ErrPermissionDenied
	}

	return s.DeadlineRepo.Delete(deadlineID)
}
