package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"strata-be-svc/internal/cache"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrDraftNotFound is returned for unknown or expired drafts
var ErrDraftNotFound = errcode.New(errcode.DraftNotFound)

// DraftRepository defines the interface for registration draft storage
type DraftRepository interface {
	Save(ctx context.Context, draft *models.RegistrationDraft, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.RegistrationDraft, error)
	Delete(ctx context.Context, id string) error
}

// draftRepository implements DraftRepository on redis
type draftRepository struct {
	store cache.Store
}

// NewDraftRepository creates a new instance of DraftRepository
func NewDraftRepository(store cache.Store) DraftRepository {
	return &draftRepository{
		store: store,
	}
}

func draftKey(id string) string {
	return cache.Key("registration", "draft", id)
}

// Save writes the draft and resets its expiry
func (r *draftRepository) Save(ctx context.Context, draft *models.RegistrationDraft, ttl time.Duration) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return r.store.Set(ctx, draftKey(draft.ID), payload, ttl).Err()
}

// Get reads a draft
func (r *draftRepository) Get(ctx context.Context, id string) (*models.RegistrationDraft, error) {
	payload, err := r.store.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	var draft models.RegistrationDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

// Delete removes a draft
func (r *draftRepository) Delete(ctx context.Context, id string) error {
	return r.store.Del(ctx, draftKey(id)).Err()
}
