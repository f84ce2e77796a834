package repository

import (
	"context"
	"strings"
	"time"

	"strata-be-svc/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListMembers(ctx context.Context) ([]models.Profile, error)
	ListApprovedMemberIDs(ctx context.Context) ([]string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateWithRows(ctx context.Context, id string, fields map[string]interface{}, household []models.HouseholdMember, vehicles []models.Vehicle) error
	Delete(ctx context.Context, id string) error
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *profileRepository) withRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Household", orderByPosition).
		Preload("Vehicles", orderByPosition).
		Preload("Document")
}

// Create inserts a profile together with its household, vehicle and document rows
func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID retrieves a profile with all of its rows
func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.withRows(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by e-mail, case-insensitively
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.withRows(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// EmailExists reports whether a profile already uses the e-mail
func (r *profileRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

// ListMembers retrieves every non-admin profile, newest first
func (r *profileRepository) ListMembers(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.withRows(ctx).
		Where("role <> ?", models.RoleAdmin).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListApprovedMemberIDs returns the ids of approved non-admin profiles
func (r *profileRepository) ListApprovedMemberIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("role <> ? AND status = ?", models.RoleAdmin, models.StatusApproved).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// UpdateFields applies a partial update to one profile. Nil values are written as NULL.
func (r *profileRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateWithRows applies a partial update and swaps the household and vehicle tables in one transaction.
// A nil slice leaves that table untouched; an empty slice clears it.
func (r *profileRepository) UpdateWithRows(ctx context.Context, id string, fields map[string]interface{}, household []models.HouseholdMember, vehicles []models.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, ok := fields["updated_at"]; !ok {
			fields = withUpdatedAt(fields)
		}
		result := tx.Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if household != nil {
			if err := tx.Where("profile_id = ?", id).Delete(&models.HouseholdMember{}).Error; err != nil {
				return err
			}
			for i := range household {
				household[i].ID = 0
				household[i].ProfileID = id
			}
			if len(household) > 0 {
				if err := tx.Create(&household).Error; err != nil {
					return err
				}
			}
		}

		if vehicles != nil {
			if err := tx.Where("profile_id = ?", id).Delete(&models.Vehicle{}).Error; err != nil {
				return err
			}
			for i := range vehicles {
				vehicles[i].ID = 0
				vehicles[i].ProfileID = id
			}
			if len(vehicles) > 0 {
				if err := tx.Create(&vehicles).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func withUpdatedAt(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updated_at"] = time.Now()
	return out
}

// Delete removes a profile and its rows
func (r *profileRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.HouseholdMember{}, &models.Vehicle{}, &models.ProfileDocument{}} {
			if err := tx.Where("profile_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(&models.Profile{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
