package repository

import (
	"studyhub_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id string) (*model.Note, error) {
	var note model.Note
	err := r.DB.First(&note, "id = ?", id).Error
	return &note, err
}

func (r *NoteRepository) ListByAuthor(userID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("author_id = ?", userID).
		Order("created_at desc").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) ListByGroup(groupID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Preload("Author").
		Where("group_id = ?", groupID).
		Order("created_at desc").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", id).Delete(&model.Flashcard{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Note{}, "id = ?", id).Error
	})
}

func (r *NoteRepository) CreateFlashcard(card *model.Flashcard) error {
	return r.DB.Create(card).Error
}

func (r *NoteRepository) FindFlashcardByID(id string) (*model.Flashcard, error) {
	var card model.Flashcard
	err := r.DB.First(&card, "id = ?", id).Error
	return &card, err
}

func (r *NoteRepository) ListFlashcardsByAuthor(userID uint) ([]model.Flashcard, error) {
	var cards []model.Flashcard
	err := r.DB.Where("author_id = ?", userID).
		Order("created_at desc").
		Find(&cards).Error
	return cards, err
}

func (r *NoteRepository) DeleteFlashcard(id string) error {
	return r.DB.Delete(&model.Flashcard{}, "id = ?", id).Error
}
