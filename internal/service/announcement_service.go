package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
	"strata-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// AnnouncementInput carries the fields of a new announcement
type AnnouncementInput struct {
	Title    string
	Category string
	Content  string
	Image    string
}

// AnnouncementUpdate carries the fields to change; nil fields are left as they are
type AnnouncementUpdate struct {
	Title    *string
	Category *string
	Content  *string
	Image    *string
}

// AnnouncementService defines the announcement board operations
type AnnouncementService interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Get(ctx context.Context, id string) (*models.Announcement, error)
	Create(ctx context.Context, input AnnouncementInput, adminID string) ([]models.Announcement, error)
	Update(ctx context.Context, id string, input AnnouncementUpdate) ([]models.Announcement, error)
	Delete(ctx context.Context, id string) ([]models.Announcement, error)
}

// announcementService implements AnnouncementService
type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	logger           *logger.Logger
	now              func() time.Time
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, logger *logger.Logger) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// List returns every announcement, newest first
func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list announcements")
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}

// Get returns one announcement
func (s *announcementService) Get(ctx context.Context, id string) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

func optionalImage(image string) *string {
	image = strings.TrimSpace(image)
	if image == "" {
		return nil
	}
	return &image
}

// Create validates and stores a new announcement and returns the reloaded board.
// Title and content are required; nothing is written when either is empty.
func (s *announcementService) Create(ctx context.Context, input AnnouncementInput, adminID string) ([]models.Announcement, error) {
	if isEmpty(input.Title) || isEmpty(input.Content) {
		return nil, errcode.New(errcode.PostMissingFields)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = models.DefaultAnnouncementCategory
	}

	announcement := &models.Announcement{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(input.Title),
		Category:  category,
		Content:   input.Content,
		Image:     optionalImage(input.Image),
		CreatedBy: adminID,
		CreatedAt: s.now(),
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		s.logger.WithError(err).Error("Failed to create announcement")
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"announcement_id": announcement.ID,
		"created_by":      adminID,
	}).Info("Announcement created successfully")

	return s.List(ctx)
}

// Update merges the provided fields and stamps updated_at
func (s *announcementService) Update(ctx context.Context, id string, input AnnouncementUpdate) ([]models.Announcement, error) {
	fields := map[string]interface{}{}
	if input.Title != nil {
		if isEmpty(*input.Title) {
			return nil, errcode.New(errcode.PostMissingFields)
		}
		fields["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		if isEmpty(*input.Content) {
			return nil, errcode.New(errcode.PostMissingFields)
		}
		fields["content"] = *input.Content
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			category = models.DefaultAnnouncementCategory
		}
		fields["category"] = category
	}
	if input.Image != nil {
		fields["image"] = optionalImage(*input.Image)
	}
	fields["updated_at"] = s.now()

	if err := s.announcementRepo.Update(ctx, id, fields); err != nil {
		s.logger.WithError(err).WithField("announcement_id", id).Error("Failed to update announcement")
		return nil, err
	}

	s.logger.WithField("announcement_id", id).Info("Announcement updated successfully")
	return s.List(ctx)
}

// Delete removes an announcement for good
func (s *announcementService) Delete(ctx context.Context, id string) ([]models.Announcement, error) {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("announcement_id", id).Error("Failed to delete announcement")
		return nil, err
	}

	s.logger.WithField("announcement_id", id).Info("Announcement deleted successfully")
	return s.List(ctx)
}
