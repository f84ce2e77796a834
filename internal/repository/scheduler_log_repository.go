package repository

import (
	"context"

	"strata-be-svc/internal/models"

	"gorm.io/gorm"
)

// SchedulerLogRepository defines the interface for scheduler log data operations
type SchedulerLogRepository interface {
	CreateLog(ctx context.Context, log *models.SchedulerLog) error
	ListByRun(ctx context.Context, runID string) ([]models.SchedulerLog, error)
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// CreateLog creates a new scheduler log record
func (r *schedulerLogRepository) CreateLog(ctx context.Context, log *models.SchedulerLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByRun returns the log records of one run in insertion order
func (r *schedulerLogRepository) ListByRun(ctx context.Context, runID string) ([]models.SchedulerLog, error) {
	var logs []models.SchedulerLog
	err := r.db.WithContext(ctx).Where("run_id = ?", runID).Order("id ASC").Find(&logs).Error
	return logs, err
}
