package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"strata-be-svc/internal/auth"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/repository"
	"strata-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// StatusAll disables the status filter
const StatusAll = "all"

const recentRegistrationsLimit = 5

const (
	importReasonMissingEmail = "Email tiada"
	importReasonInvalidEmail = "Email tidak sah"
	importReasonDuplicate    = "Email telah didaftarkan"
	importReasonMissingName  = "Nama tiada"
)

// MemberFilter narrows the moderation listing. Both parts are optional and compose.
type MemberFilter struct {
	Status string
	Search string
}

// ModerationService defines the admin moderation operations
type ModerationService interface {
	Load(ctx context.Context) ([]models.Profile, error)
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	Snapshot(ctx context.Context, filter MemberFilter) (*response.ModerationSnapshotResponse, error)
	GetMember(ctx context.Context, id string) (*response.ProfileDetailResponse, error)
	Approve(ctx context.Context, id, adminID string) (*response.ModerationSnapshotResponse, error)
	Reject(ctx context.Context, id, adminID string) (*response.ModerationSnapshotResponse, error)
	Documents(ctx context.Context) ([]response.DocumentEntryResponse, error)
	ExportMembers(ctx context.Context, filter MemberFilter) ([]byte, string, error)
	ImportMembers(ctx context.Context, r io.Reader) (*response.MemberImportResponse, error)
}

// moderationService implements ModerationService
type moderationService struct {
	profileRepo      repository.ProfileRepository
	announcementRepo repository.AnnouncementRepository
	notifier         *auth.Notifier
	logger           *logger.Logger
	now              func() time.Time
}

// NewModerationService creates a new moderation service
func NewModerationService(
	profileRepo repository.ProfileRepository,
	announcementRepo repository.AnnouncementRepository,
	notifier *auth.Notifier,
	logger *logger.Logger,
) ModerationService {
	return &moderationService{
		profileRepo:      profileRepo,
		announcementRepo: announcementRepo,
		notifier:         notifier,
		logger:           logger,
		now:              time.Now,
	}
}

// FilterProfiles applies the status and search filters, keeping the load order
func FilterProfiles(profiles []models.Profile, filter MemberFilter) []models.Profile {
	status := strings.TrimSpace(filter.Status)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if status != "" && status != StatusAll && string(p.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.FullName), search) &&
			!strings.Contains(strings.ToLower(p.Email), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ComputeStats counts the three moderation buckets. Other statuses are not counted.
func ComputeStats(profiles []models.Profile, announcements int64) response.ModerationStatsResponse {
	stats := response.ModerationStatsResponse{Announcements: announcements}
	for _, p := range profiles {
		switch p.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusApproved:
			stats.Approved++
		case models.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// DocumentRegistry projects the profiles that carry a document
func DocumentRegistry(profiles []models.Profile) []response.DocumentEntryResponse {
	out := make([]response.DocumentEntryResponse, 0)
	for _, p := range profiles {
		if !p.HasDocument() {
			continue
		}
		out = append(out, response.DocumentEntryResponse{
			ProfileID:  p.ID,
			FullName:   p.FullName,
			Email:      p.Email,
			FileName:   p.Document.FileName,
			URL:        p.Document.URL,
			MimeType:   p.Document.MimeType,
			Icon:       IconFor(p.Document.MimeType),
			UploadedAt: p.Document.UploadedAt,
		})
	}
	return out
}

func memberSummary(p *models.Profile) response.MemberSummaryResponse {
	return response.MemberSummaryResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Email:       p.Email,
		Phone:       p.Phone,
		HouseNo:     p.Address.HouseNo,
		Status:      string(p.Status),
		Verified:    p.Verified,
		HasDocument: p.HasDocument(),
		CreatedAt:   p.CreatedAt,
	}
}

func memberSummaries(profiles []models.Profile) []response.MemberSummaryResponse {
	out := make([]response.MemberSummaryResponse, len(profiles))
	for i := range profiles {
		out[i] = memberSummary(&profiles[i])
	}
	return out
}

// Load reads the member queue, newest first, without admin profiles
func (s *moderationService) Load(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.ListMembers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load moderation queue")
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	out := profiles[:0]
	for _, p := range profiles {
		if p.Role != models.RoleAdmin {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *moderationService) stats(ctx context.Context, profiles []models.Profile) (response.ModerationStatsResponse, error) {
	count, err := s.announcementRepo.Count(ctx)
	if err != nil {
		return response.ModerationStatsResponse{}, fmt.Errorf("failed to count announcements: %w", err)
	}
	return ComputeStats(profiles, count), nil
}

// Dashboard returns the counters and the most recent registrations
func (s *moderationService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	profiles, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats(ctx, profiles)
	if err != nil {
		return nil, err
	}

	recent := profiles
	if len(recent) > recentRegistrationsLimit {
		recent = recent[:recentRegistrationsLimit]
	}

	return &response.DashboardResponse{
		Stats:               stats,
		RecentRegistrations: memberSummaries(recent),
	}, nil
}

// Snapshot returns the stats over the whole queue and the filtered listing
func (s *moderationService) Snapshot(ctx context.Context, filter MemberFilter) (*response.ModerationSnapshotResponse, error) {
	profiles, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats(ctx, profiles)
	if err != nil {
		return nil, err
	}

	return &response.ModerationSnapshotResponse{
		Stats:   stats,
		Members: memberSummaries(FilterProfiles(profiles, filter)),
	}, nil
}

func (s *moderationService) getMember(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Role == models.RoleAdmin {
		return nil, repository.ErrNotFound
	}
	return profile, nil
}

// GetMember returns the full profile of one member
func (s *moderationService) GetMember(ctx context.Context, id string) (*response.ProfileDetailResponse, error) {
	profile, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.NewProfileDetailResponse(profile), nil
}

// Approve marks a member approved and clears any earlier rejection
func (s *moderationService) Approve(ctx context.Context, id, adminID string) (*response.ModerationSnapshotResponse, error) {
	now := s.now()
	return s.decide(ctx, id, models.StatusApproved, map[string]interface{}{
		"status":      models.StatusApproved,
		"verified":    true,
		"approved_at": now,
		"approved_by": adminID,
		"rejected_at": nil,
		"rejected_by": nil,
	})
}

// Reject marks a member rejected and clears any earlier approval
func (s *moderationService) Reject(ctx context.Context, id, adminID string) (*response.ModerationSnapshotResponse, error) {
	now := s.now()
	return s.decide(ctx, id, models.StatusRejected, map[string]interface{}{
		"status":      models.StatusRejected,
		"verified":    false,
		"rejected_at": now,
		"rejected_by": adminID,
		"approved_at": nil,
		"approved_by": nil,
	})
}

func (s *moderationService) decide(ctx context.Context, id string, status models.ProfileStatus, fields map[string]interface{}) (*response.ModerationSnapshotResponse, error) {
	profile, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateFields(ctx, profile.ID, fields); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"profile_id": id,
			"status":     status,
		}).Error("Failed to update member status")
		return nil, err
	}

	s.notifier.Publish(auth.Event{
		Type:       auth.EventStatusChanged,
		IdentityID: profile.ID,
		Email:      profile.Email,
		Status:     string(status),
	})

	s.logger.WithFields(map[string]interface{}{
		"profile_id": id,
		"status":     status,
	}).Info("Member status updated")

	return s.Snapshot(ctx, MemberFilter{})
}

// Documents returns the document registry
func (s *moderationService) Documents(ctx context.Context) ([]response.DocumentEntryResponse, error) {
	profiles, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return DocumentRegistry(profiles), nil
}

// ExportMembers writes the filtered queue to an Excel workbook
func (s *moderationService) ExportMembers(ctx context.Context, filter MemberFilter) ([]byte, string, error) {
	profiles, err := s.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	profiles = FilterProfiles(profiles, filter)

	sheetName := "Ahli"
	headers := []string{"No", "Nama", "Email", "No. KP", "No. Telefon", "No. Rumah", "Jalan", "Status", "Dokumen", "Tarikh Daftar"}
	f, err := newWorkbook(sheetName, headers)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	for i, p := range profiles {
		document := "Tiada"
		if p.HasDocument() {
			document = p.Document.FileName
		}
		setRow(f, sheetName, i+2,
			i+1,
			p.FullName,
			p.Email,
			p.NationalID,
			p.Phone,
			p.Address.HouseNo,
			p.Address.Street,
			string(p.Status),
			document,
			p.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	data, filename, err := writeWorkbook(f, "ahli_export", s.now())
	if err != nil {
		return nil, "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"rows":     len(profiles),
		"filename": filename,
	}).Info("Members exported")

	return data, filename, nil
}

// ImportMembers creates pending profiles without an identity from a legacy register.
// Columns: name, email, national id, phone, house no, street. The first row is a header.
func (s *moderationService) ImportMembers(ctx context.Context, r io.Reader) (*response.MemberImportResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errcode.Wrap(errcode.ImportInvalidFile, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errcode.Wrap(errcode.ImportInvalidFile, err)
	}

	result := &response.MemberImportResponse{Skipped: []response.ImportSkipResponse{}}
	seen := make(map[string]bool)

	for i, row := range rows {
		if i == 0 {
			continue
		}
		cells := make([]string, 6)
		for j := range cells {
			if j < len(row) {
				cells[j] = strings.TrimSpace(row[j])
			}
		}
		name, email := cells[0], normalizeEmail(cells[1])
		if name == "" && email == "" {
			continue
		}

		skip := func(reason string) {
			result.Skipped = append(result.Skipped, response.ImportSkipResponse{Row: i + 1, Email: email, Reason: reason})
		}

		switch {
		case name == "":
			skip(importReasonMissingName)
			continue
		case email == "":
			skip(importReasonMissingEmail)
			continue
		case !isValidEmail(email):
			skip(importReasonInvalidEmail)
			continue
		case seen[email]:
			skip(importReasonDuplicate)
			continue
		}
		seen[email] = true

		exists, err := s.profileRepo.EmailExists(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			skip(importReasonDuplicate)
			continue
		}

		profile := &models.Profile{
			ID:         uuid.NewString(),
			Email:      email,
			FullName:   name,
			NationalID: cells[2],
			Phone:      cells[3],
			Address: models.Address{
				HouseNo: cells[4],
				Street:  cells[5],
			},
			Status: models.StatusPending,
			Role:   models.RoleMember,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			s.logger.WithError(err).WithField("email", email).Error("Failed to import member")
			return nil, fmt.Errorf("failed to import member on row %d: %w", i+1, err)
		}
		result.Created++
	}

	s.logger.WithFields(map[string]interface{}{
		"created": result.Created,
		"skipped": len(result.Skipped),
	}).Info("Members imported")

	return result, nil
}
