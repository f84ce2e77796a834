package service

import (
	"context"
	"testing"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
)

// countingAnnouncementRepo records writes that reach the store
type countingAnnouncementRepo struct {
	repository.AnnouncementRepository
	creates int
}

func (r *countingAnnouncementRepo) Create(ctx context.Context, announcement *models.Announcement) error {
	r.creates++
	return r.AnnouncementRepository.Create(ctx, announcement)
}

func TestCreateAnnouncementRequiresTitleAndContent(t *testing.T) {
	env := newTestEnv(t)
	repo := &countingAnnouncementRepo{AnnouncementRepository: env.announcements}
	svc := NewAnnouncementService(repo, env.logger)

	tests := []AnnouncementInput{
		{Title: "", Content: "Kandungan"},
		{Title: "Tajuk", Content: "   "},
	}
	for _, input := range tests {
		_, err := svc.Create(context.Background(), input, "admin-1")
		assertCode(t, err, errcode.PostMissingFields)
	}

	if repo.creates != 0 {
		t.Fatalf("expected no store write, got %d", repo.creates)
	}
}

func TestAnnouncementLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAnnouncementService(env.announcements, env.logger)
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.(*announcementService).now = func() time.Time { return first }
	list, err := svc.Create(ctx, AnnouncementInput{Title: "Gotong-royong", Content: "Sabtu ini", Image: "  "}, "admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(list) != 1 || list[0].Category != models.DefaultAnnouncementCategory || list[0].Image != nil {
		t.Fatalf("unexpected first announcement: %+v", list)
	}
	if list[0].CreatedBy != "admin-1" {
		t.Fatalf("expected created_by admin-1, got %q", list[0].CreatedBy)
	}

	svc.(*announcementService).now = func() time.Time { return first.Add(24 * time.Hour) }
	list, err = svc.Create(ctx, AnnouncementInput{Title: "Mesyuarat", Category: "Mesyuarat", Content: "AGM"}, "admin-1")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Mesyuarat" {
		t.Fatalf("list must be newest first: %+v", list)
	}

	id := list[1].ID
	newTitle := "Gotong-royong Perdana"
	list, err = svc.Update(ctx, id, AnnouncementUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if updated.Title != newTitle || updated.Content != "Sabtu ini" {
		t.Fatalf("update must merge only given fields: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatal("update must stamp updated_at")
	}

	empty := ""
	_, err = svc.Update(ctx, id, AnnouncementUpdate{Content: &empty})
	assertCode(t, err, errcode.PostMissingFields)

	list, err = svc.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one announcement left, got %d", len(list))
	}

	_, err = svc.Delete(ctx, id)
	assertCode(t, err, errcode.DataNotFound)
}
