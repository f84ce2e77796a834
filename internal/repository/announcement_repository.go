package repository

import (
	"context"

	"strata-be-svc/internal/models"

	"gorm.io/gorm"
)

// AnnouncementRepository defines the interface for announcement data operations
type AnnouncementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// announcementRepository implements AnnouncementRepository
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new instance of AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{
		db: db,
	}
}

// List retrieves every announcement, newest first
func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// GetByID retrieves one announcement
func (r *announcementRepository) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error; err != nil {
		return nil, translate(err)
	}
	return &announcement, nil
}

// Create inserts an announcement
func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// Update merges the given fields into an announcement
func (r *announcementRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Announcement{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes an announcement
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Announcement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of announcements
func (r *announcementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Announcement{}).Count(&count).Error
	return count, err
}
