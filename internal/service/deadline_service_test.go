package service_test

import (
	"errors"
	"testing"
	"time"

	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
)

func newDeadlineService(t *testing.T) (*service.DeadlineService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewDeadlineService(
		repository.NewDeadlineRepository(db),
		repository.NewGroupRepository(db),
	), db
}

func TestDeadlinesSortedByDueDate(t *testing.T) {
	svc, db := newDeadlineService(t)
	admin := seedUser(t, db, "admin")
	group := seedGroup(t, db, admin.ID)

	now := time.Now()
	for _, d := range []struct {
		title string
		due   time.Time
	}{
		{"later", now.Add(48 * time.Hour)},
		{"soonest", now.Add(2 * time.Hour)},
		{"middle", now.Add(24 * time.Hour)},
	} {
		if _, err := svc.CreateDeadline(group.ID, admin.ID, service.DeadlineReq{Title: d.title, DueDate: d.due}); err != nil {
			t.Fatalf("create %q failed: %v", d.title, err)
		}
	}

	deadlines, err := svc.ListDeadlines(group.ID, admin.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(deadlines) != 3 {
		t.Fatalf("expected 3 deadlines, got %d", len(deadlines))
	}
	if deadlines[0].Title != "soonest" || deadlines[2].Title != "later" {
		t.Fatalf("expected due-date ascending order, got %s,%s,%s",
			deadlines[0].Title, deadlines[1].Title, deadlines[2].Title)
	}
}

func TestDeadlineUpdateAndDeleteRules(t *testing.T) {
	svc, db := newDeadlineService(t)
	admin := seedUser(t, db, "admin")
	creator := seedUser(t, db, "creator")
	bystander := seedUser(t, db, "bystander")
	group := seedGroup(t, db, admin.ID, creator.ID, bystander.ID)

	deadline, err := svc.CreateDeadline(group.ID, creator.ID, service.DeadlineReq{
		Title:   "exam prep",
		DueDate: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := service.DeadlineReq{Title: "exam prep v2", DueDate: deadline.DueDate}
	if _, err := svc.UpdateDeadline(group.ID, deadline.ID, bystander.ID, req); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("plain member update must fail, got %v", err)
	}
	if _, err := svc.UpdateDeadline(group.ID, deadline.ID, creator.ID, req); err != nil {
		t.Fatalf("creator update failed: %v", err)
	}
	if err := svc.DeleteDeadline(group.ID, deadline.ID, bystander.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("plain member delete must fail, got %v", err)
	}
	if err := svc.DeleteDeadline(group.ID, deadline.ID, admin.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := svc.DeleteDeadline(group.ID, deadline.ID, creator.ID); !errors.Is(err, util.ErrDeadlineNotFound) {
		t.Fatalf("expected deadline gone, got %v", err)
	}
}
