package service

import (
	"errors"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
)

type NoteService struct {
	NoteRepo  *repository.NoteRepository
	GroupRepo *repository.GroupRepository
}

func NewNoteService(noteRepo *repository.NoteRepository, groupRepo *repository.GroupRepository) *NoteService {
	return &NoteService{
		NoteRepo:  noteRepo,
		GroupRepo: groupRepo,
	}
}

type NoteReq struct {
	GroupID *string `json:"groupId"`
	Title   string  `json:"title" binding:"required"`
	Content string  `json:"content"`
	Tags    string  `json:"tags"`
}

func (s *NoteService) CreateNote(authorID uint, req NoteReq) (*model.Note, error) {
	// 挂到小组下时要求作者是该组成员
	if req.GroupID != nil {
		group, err := s.GroupRepo.FindByID(*req.GroupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrGroupNotFound
			}
			return nil, err
		}
		if !group.IsActiveMember(authorID) {
			return nil, util.ErrNotGroupMember
		}
	}

	note := &model.Note{
		GroupID:  req.GroupID,
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetNote(noteID string, userID uint) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}

	if note.AuthorID == userID {
		return note, nil
	}

	// 组内笔记对组员可见
	if note.GroupID != nil {
		group, err := s.GroupRepo.FindByID(*note.GroupID)
		if err == nil && group.IsActiveMember(userID) {
			return note, nil
		}
	}

	return nil, util.ErrPermissionDenied
}

func (s *NoteService) ListMyNotes(userID uint) ([]model.Note, error) {
	return s.NoteRepo.ListByAuthor(userID)
}

func (s *NoteService) ListGroupNotes(groupID string, userID uint) ([]model.Note, error) {
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
	return s.NoteRepo.ListByGroup(groupID)
}

func (s *NoteService) UpdateNote(noteID string, userID uint, req NoteReq) (*model.Note, error) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}
	if note.AuthorID != userID {
		return nil, util.ErrPermissionDenied
	}

	note.Title = req.Title
	note.Content = req.Content
	note.Tags = req.Tags
	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(noteID string, userID uint) error {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNoteNotFound
		}
		return err
	}
	if note.AuthorID != userID {
		return util.ErrPermissionDenied
	}
	return s.NoteRepo.Delete(noteID)
}

type FlashcardReq struct {
	NoteID *string `json:"noteId"`
	Front  string  `json:"front" binding:"required"`
	Back   string  `json:"back"`
}

func (s *NoteService) CreateFlashcard(authorID uint, req FlashcardReq) (*model.Flashcard, error) {
	if req.NoteID != nil {
		note, err := s.NoteRepo.FindByID(*req.NoteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrNoteNotFound
			}
			return nil, err
		}
		if note.AuthorID != authorID {
			return nil, util.ErrPermissionDenied
		}
	}

	card := &model.Flashcard{
		NoteID:   req.NoteID,
		AuthorID: authorID,
		Front:    req.Front,
		Back:     req.Back,
	}
	if err := s.NoteRepo.CreateFlashcard(card); err != nil {
		return nil, err
	}
	return card, nil
}

// SaveGeneratedNote 把 AI 生成的内容落库为用户笔记并打上来源标记
func (s *NoteService) SaveGeneratedNote(authorID uint, groupID *string, generated *GeneratedNote) (*model.Note, error) {
	if groupID != nil {
		group, err := s.GroupRepo.FindByID(*groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrGroupNotFound
			}
			return nil, err
		}
		if !group.IsActiveMember(authorID) {
			return nil, util.ErrNotGroupMember
		}
	}

	note := &model.Note{
		GroupID:  groupID,
		AuthorID: authorID,
		Title:    generated.Title,
		Content:  generated.Content,
		Tags:     generated.Tags,
		FromAI:   true,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// SaveGeneratedFlashcards 批量落库 AI 生成的卡片
func (s *NoteService) SaveGeneratedFlashcards(authorID uint, generated []GeneratedFlashcard) ([]model.Flashcard, error) {
	cards := make([]model.Flashcard, 0, len(generated))
	for _, g := range generated {
		card := model.Flashcard{
			AuthorID: authorID,
			Front:    g.Front,
			Back:     g.Back,
			FromAI:   true,
		}
		if err := s.NoteRepo.CreateFlashcard(&card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *NoteService) ListMyFlashcards(userID uint) ([]model.Flashcard, error) {
	return s.NoteRepo.ListFlashcardsByAuthor(userID)
}

func (s *NoteService) DeleteFlashcard(cardID string, userID uint) error {
	card, err := s.NoteRepo.FindFlashcardByID(cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNoteNotFound
		}
		return err
	}
	if card.AuthorID != userID {
		return util.ErrPermissionDenied
	}
	return s.NoteRepo.DeleteFlashcard(cardID)
}
