package service

import (
	"testing"
	"time"

	"strata-be-svc/internal/models"
)

func TestBuildDigest(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	profiles := []models.Profile{
		{Status: models.StatusPending, CreatedAt: now.Add(-1 * time.Hour)},
		{Status: models.StatusPending, CreatedAt: now.Add(-96 * time.Hour)},
		{Status: models.StatusApproved, CreatedAt: now.Add(-200 * time.Hour)},
		{Status: models.StatusPending, Role: models.RoleAdmin, CreatedAt: now.Add(-500 * time.Hour)},
	}

	digest := BuildDigest(profiles, now, 72*time.Hour)
	if digest.Pending != 2 || digest.Stale != 1 {
		t.Fatalf("unexpected digest: %+v", digest)
	}
	if digest.OldestPendingAt == nil || !digest.OldestPendingAt.Equal(now.Add(-96*time.Hour)) {
		t.Fatalf("unexpected oldest pending: %v", digest.OldestPendingAt)
	}

	if empty := BuildDigest(nil, now, time.Hour); empty.Pending != 0 || empty.OldestPendingAt != nil {
		t.Fatalf("unexpected empty digest: %+v", empty)
	}
}
