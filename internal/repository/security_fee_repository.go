package repository

import (
	"context"
	"time"

	"strata-be-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SecurityFeeRepository defines the interface for security fee ledger data operations
type SecurityFeeRepository interface {
	ListByProfileYear(ctx context.Context, profileID string, year int) ([]models.SecurityFee, error)
	ListByYear(ctx context.Context, year int, status *models.FeeStatus) ([]models.SecurityFee, error)
	CreateMissing(ctx context.Context, fees []models.SecurityFee) (int64, error)
	MarkPaid(ctx context.Context, ids []uint, paidAt time.Time) (int64, error)
}

// securityFeeRepository implements SecurityFeeRepository
type securityFeeRepository struct {
	db *gorm.DB
}

// NewSecurityFeeRepository creates a new instance of SecurityFeeRepository
func NewSecurityFeeRepository(db *gorm.DB) SecurityFeeRepository {
	return &securityFeeRepository{
		db: db,
	}
}

// ListByProfileYear retrieves a member's entries for one year ordered by month
func (r *securityFeeRepository) ListByProfileYear(ctx context.Context, profileID string, year int) ([]models.SecurityFee, error) {
	var fees []models.SecurityFee
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND year = ?", profileID, year).
		Order("month ASC").
		Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// ListByYear retrieves every entry of a year with its member, optionally filtered by status
func (r *securityFeeRepository) ListByYear(ctx context.Context, year int, status *models.FeeStatus) ([]models.SecurityFee, error) {
	query := r.db.WithContext(ctx).
		Preload("Profile").
		Where("year = ?", year)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var fees []models.SecurityFee
	if err := query.Order("profile_id ASC, month ASC").Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

// CreateMissing inserts entries in batches, skipping periods that already exist.
// It returns the number of rows actually inserted.
func (r *securityFeeRepository) CreateMissing(ctx context.Context, fees []models.SecurityFee) (int64, error) {
	if len(fees) == 0 {
		return 0, nil
	}

	var created int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "year"}, {Name: "month"}},
			DoNothing: true,
		}).CreateInBatches(&fees, 100)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected
		return nil
	})
	return created, err
}

// MarkPaid marks the given outstanding entries as paid
func (r *securityFeeRepository) MarkPaid(ctx context.Context, ids []uint, paidAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var updated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SecurityFee{}).
			Where("id IN ? AND status = ?", ids, models.FeeOutstanding).
			Updates(map[string]interface{}{
				"status":  models.FeePaid,
				"paid_at": paidAt,
			})
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		return nil
	})
	return updated, err
}
