package service_test

import (
	"errors"
	"testing"

	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
)

func newNoteService(t *testing.T) (*service.NoteService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewGroupRepository(db),
	), db
}

func TestCreateGroupNoteRequiresMembership(t *testing.T) {
	svc, db := newNoteService(t)
	admin := seedUser(t, db, "admin")
	outsider := seedUser(t, db, "outsider")
	group := seedGroup(t, db, admin.ID)

	_, err := svc.CreateNote(outsider.ID, service.NoteReq{GroupID: &group.ID, Title: "notes"})
	if !errors.Is(err, util.ErrNotGroupMember) {
		t.Fatalf("expected membership error, got %v", err)
	}

	note, err := svc.CreateNote(admin.ID, service.NoteReq{GroupID: &group.ID, Title: "notes", Content: "body"})
	if err != nil {
		t.Fatalf("member create failed: %v", err)
	}
	if note.GroupID == nil || *note.GroupID != group.ID {
		t.Fatalf("note not attached to group: %+v", note)
	}
}

func TestGroupNoteVisibleToMembersOnly(t *testing.T) {
	svc, db := newNoteService(t)
	admin := seedUser(t, db, "admin")
	member := seedUser(t, db, "member")
	outsider := seedUser(t, db, "outsider")
	group := seedGroup(t, db, admin.ID, member.ID)

	note, err := svc.CreateNote(admin.ID, service.NoteReq{GroupID: &group.ID, Title: "shared"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetNote(note.ID, member.ID); err != nil {
		t.Fatalf("member should read group note: %v", err)
	}
	if _, err := svc.GetNote(note.ID, outsider.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("outsider should be denied, got %v", err)
	}
}

func TestUpdateNoteAuthorOnly(t *testing.T) {
	svc, db := newNoteService(t)
	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")

	note, err := svc.CreateNote(author.ID, service.NoteReq{Title: "draft"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateNote(note.ID, other.ID, service.NoteReq{Title: "hijack"}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("non-author update must fail, got %v", err)
	}
	if err := svc.DeleteNote(note.ID, other.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("non-author delete must fail, got %v", err)
	}

	updated, err := svc.UpdateNote(note.ID, author.ID, service.NoteReq{Title: "final", Content: "done"})
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Title != "final" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if err := svc.DeleteNote(note.ID, author.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
}

func TestSaveGeneratedNoteMarksOrigin(t *testing.T) {
	svc, db := newNoteService(t)
	author := seedUser(t, db, "author")

	note, err := svc.SaveGeneratedNote(author.ID, nil, &service.GeneratedNote{
		Title:   "Sorting",
		Content: "quicksort vs mergesort",
		Tags:    "algorithms",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !note.FromAI {
		t.Fatalf("generated note must carry the AI origin flag")
	}

	cards, err := svc.SaveGeneratedFlashcards(author.ID, []service.GeneratedFlashcard{
		{Front: "TCP layer?", Back: "Transport"},
	})
	if err != nil {
		t.Fatalf("save cards failed: %v", err)
	}
	if len(cards) != 1 || !cards[0].FromAI {
		t.Fatalf("generated cards must carry the AI origin flag: %+v", cards)
	}
}

func TestFlashcardLifecycle(t *testing.T) {
	svc, db := newNoteService(t)
	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")

	card, err := svc.CreateFlashcard(author.ID, service.FlashcardReq{Front: "Q", Back: "A"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.ListMyFlashcards(author.ID)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected 1 card, got %d (err %v)", len(mine), err)
	}

	if err := svc.DeleteFlashcard(card.ID, other.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("non-author delete must fail, got %v", err)
	}
	if err := svc.DeleteFlashcard(card.ID, author.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
}
