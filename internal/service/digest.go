package service

import (
	"time"

	"strata-be-svc/internal/models"
)

// ModerationDigest summarises the pending part of the queue
type ModerationDigest struct {
	Pending         int        `json:"pending"`
	Stale           int        `json:"stale"`
	OldestPendingAt *time.Time `json:"oldest_pending_at,omitempty"`
}

// BuildDigest counts pending registrations and those waiting longer than staleAfter
func BuildDigest(profiles []models.Profile, now time.Time, staleAfter time.Duration) ModerationDigest {
	var digest ModerationDigest
	for _, p := range profiles {
		if p.Status != models.StatusPending || p.Role == models.RoleAdmin {
			continue
		}
		digest.Pending++
		if now.Sub(p.CreatedAt) > staleAfter {
			digest.Stale++
		}
		if digest.OldestPendingAt == nil || p.CreatedAt.Before(*digest.OldestPendingAt) {
			created := p.CreatedAt
			digest.OldestPendingAt = &created
		}
	}
	return digest
}
