package service

import (
	"context"
	"fmt"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/repository"
	"strata-be-svc/internal/storage"
	"strata-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// RowKind names one of the editable row tables of a registration form
type RowKind string

const (
	RowsHousehold RowKind = "household"
	RowsVehicles  RowKind = "vehicles"
)

// RegistrationInput is a submitted membership application
type RegistrationInput struct {
	Email          string
	Password       string
	FullName       string
	NationalID     string
	Ethnicity      string
	Address        models.Address
	Phone          string
	MembershipTags []string
	Household      []models.HouseholdRow
	Vehicles       []models.VehicleRow
	DraftID        string
	Document       *DocumentUpload
}

// RegistrationService defines the registration intake and draft operations
type RegistrationService interface {
	Register(ctx context.Context, input *RegistrationInput) (*models.Profile, error)
	CreateDraft(ctx context.Context) (*response.DraftResponse, error)
	GetDraft(ctx context.Context, id string) (*response.DraftResponse, error)
	AddDraftRow(ctx context.Context, id string, kind RowKind) (*response.DraftResponse, error)
	UpdateHouseholdRow(ctx context.Context, id string, no int, row models.HouseholdRow) (*response.DraftResponse, error)
	UpdateVehicleRow(ctx context.Context, id string, no int, row models.VehicleRow) (*response.DraftResponse, error)
	RemoveDraftRow(ctx context.Context, id string, kind RowKind, no int) (*response.RowRemovalResponse, error)
	DeleteDraft(ctx context.Context, id string) error
}

// registrationService implements RegistrationService
type registrationService struct {
	authService AuthService
	profileRepo repository.ProfileRepository
	draftRepo   repository.DraftRepository
	uploader    storage.Uploader
	logger      *logger.Logger
	draftTTL    time.Duration
	now         func() time.Time
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	authService AuthService,
	profileRepo repository.ProfileRepository,
	draftRepo repository.DraftRepository,
	uploader storage.Uploader,
	logger *logger.Logger,
	draftTTL time.Duration,
) RegistrationService {
	if draftTTL <= 0 {
		draftTTL = 24 * time.Hour
	}
	return &registrationService{
		authService: authService,
		profileRepo: profileRepo,
		draftRepo:   draftRepo,
		uploader:    uploader,
		logger:      logger,
		draftTTL:    draftTTL,
		now:         time.Now,
	}
}

func validateRegistration(input *RegistrationInput) error {
	if isEmpty(input.FullName) || isEmpty(input.NationalID) || isEmpty(input.Phone) {
		return errcode.New(errcode.RegistrationIncomplete)
	}
	if err := validateCredentials(normalizeEmail(input.Email), input.Password); err != nil {
		return err
	}
	if len(input.Password) < minPasswordLength {
		return errcode.New(errcode.AuthWeakPassword)
	}
	return nil
}

// Register binds a new identity and writes the pending profile with its rows and document.
// Every validation runs before the first store call. When the profile write fails the
// identity and the uploaded document are removed again.
func (s *registrationService) Register(ctx context.Context, input *RegistrationInput) (*models.Profile, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	var mimeType string
	if input.Document != nil {
		mt, err := ValidateDocument(input.Document)
		if err != nil {
			return nil, err
		}
		mimeType = mt
	}

	household, vehicles := input.Household, input.Vehicles
	if input.DraftID != "" {
		draft, err := s.draftRepo.Get(ctx, input.DraftID)
		if err != nil {
			return nil, err
		}
		household, vehicles = draft.Household, draft.Vehicles
	}

	email := normalizeEmail(input.Email)
	exists, err := s.profileRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errcode.New(errcode.AuthEmailAlreadyInUse)
	}

	account, err := s.authService.SignUp(ctx, email, input.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:             account.ID,
		Email:          account.Email,
		FullName:       input.FullName,
		NationalID:     input.NationalID,
		Ethnicity:      input.Ethnicity,
		Address:        input.Address,
		Phone:          input.Phone,
		MembershipTags: input.MembershipTags,
		Household:      toHouseholdMembers(household),
		Vehicles:       toVehicles(vehicles),
		Status:         models.StatusPending,
		Role:           models.RoleMember,
	}

	var uploaded *storage.UploadResult
	if input.Document != nil {
		fileName := documentFileName(input.Document.FileName)
		uploaded, err = s.uploader.Upload(ctx, storage.UploadInput{
			Key:         fmt.Sprintf("documents/%s/%s", account.ID, fileName),
			Body:        input.Document.Data,
			ContentType: mimeType,
		})
		if err != nil {
			s.logger.WithError(err).WithField("identity_id", account.ID).Error("Failed to upload document")
			s.rollbackIdentity(ctx, account.ID)
			return nil, fmt.Errorf("failed to upload document: %w", err)
		}
		profile.Document = &models.ProfileDocument{
			URL:        uploaded.URL,
			FileName:   fileName,
			MimeType:   mimeType,
			Size:       uploaded.Size,
			UploadedAt: s.now(),
		}
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.WithError(err).WithField("identity_id", account.ID).Error("Failed to create profile")
		if uploaded != nil {
			if derr := s.uploader.Delete(ctx, uploaded.Key); derr != nil {
				s.logger.WithError(derr).WithField("key", uploaded.Key).Warn("Failed to remove orphaned document")
			}
		}
		s.rollbackIdentity(ctx, account.ID)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if input.DraftID != "" {
		if err := s.draftRepo.Delete(ctx, input.DraftID); err != nil {
			s.logger.WithError(err).WithField("draft_id", input.DraftID).Warn("Failed to delete registration draft")
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"profile_id": profile.ID,
		"household":  len(profile.Household),
		"vehicles":   len(profile.Vehicles),
		"document":   profile.HasDocument(),
	}).Info("Registration submitted successfully")

	return s.profileRepo.GetByID(ctx, profile.ID)
}

func (s *registrationService) rollbackIdentity(ctx context.Context, id string) {
	if err := s.authService.DeleteIdentity(ctx, id); err != nil {
		s.logger.WithError(err).WithField("identity_id", id).Error("Failed to roll back identity")
	}
}

func (s *registrationService) draftResponse(draft *models.RegistrationDraft) *response.DraftResponse {
	return &response.DraftResponse{
		ID:        draft.ID,
		Household: numberRows(draft.Household),
		Vehicles:  numberRows(draft.Vehicles),
		ExpiresAt: draft.UpdatedAt.Add(s.draftTTL),
	}
}

func (s *registrationService) saveDraft(ctx context.Context, draft *models.RegistrationDraft) (*response.DraftResponse, error) {
	draft.UpdatedAt = s.now()
	if err := s.draftRepo.Save(ctx, draft, s.draftTTL); err != nil {
		s.logger.WithError(err).WithField("draft_id", draft.ID).Error("Failed to save registration draft")
		return nil, err
	}
	return s.draftResponse(draft), nil
}

// CreateDraft starts a form with one empty row in each table
func (s *registrationService) CreateDraft(ctx context.Context) (*response.DraftResponse, error) {
	draft := &models.RegistrationDraft{
		ID:        uuid.NewString(),
		Household: []models.HouseholdRow{{}},
		Vehicles:  []models.VehicleRow{{}},
		CreatedAt: s.now(),
	}
	return s.saveDraft(ctx, draft)
}

// GetDraft returns a draft with numbered rows
func (s *registrationService) GetDraft(ctx context.Context, id string) (*response.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.draftResponse(draft), nil
}

// AddDraftRow appends an empty row to the table
func (s *registrationService) AddDraftRow(ctx context.Context, id string, kind RowKind) (*response.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch kind {
	case RowsHousehold:
		draft.Household = appendRow(draft.Household)
	case RowsVehicles:
		draft.Vehicles = appendRow(draft.Vehicles)
	default:
		return nil, errcode.New(errcode.DraftInvalidRowKind)
	}

	return s.saveDraft(ctx, draft)
}

// UpdateHouseholdRow replaces the household row with the 1-based number
func (s *registrationService) UpdateHouseholdRow(ctx context.Context, id string, no int, row models.HouseholdRow) (*response.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if no < 1 || no > len(draft.Household) {
		return nil, errcode.New(errcode.ValidationFailed)
	}
	draft.Household[no-1] = row
	return s.saveDraft(ctx, draft)
}

// UpdateVehicleRow replaces the vehicle row with the 1-based number
func (s *registrationService) UpdateVehicleRow(ctx context.Context, id string, no int, row models.VehicleRow) (*response.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if no < 1 || no > len(draft.Vehicles) {
		return nil, errcode.New(errcode.ValidationFailed)
	}
	draft.Vehicles[no-1] = row
	return s.saveDraft(ctx, draft)
}

// RemoveDraftRow removes a row. Removing the only row of a table is reported as removed=false.
func (s *registrationService) RemoveDraftRow(ctx context.Context, id string, kind RowKind, no int) (*response.RowRemovalResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var removed bool
	switch kind {
	case RowsHousehold:
		draft.Household, removed = removeRow(draft.Household, no)
	case RowsVehicles:
		draft.Vehicles, removed = removeRow(draft.Vehicles, no)
	default:
		return nil, errcode.New(errcode.DraftInvalidRowKind)
	}

	if !removed {
		return &response.RowRemovalResponse{Removed: false, Draft: s.draftResponse(draft)}, nil
	}

	view, err := s.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &response.RowRemovalResponse{Removed: true, Draft: view}, nil
}

// DeleteDraft discards a draft
func (s *registrationService) DeleteDraft(ctx context.Context, id string) error {
	if _, err := s.draftRepo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.draftRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("draft_id", id).Info("Registration draft deleted")
	return nil
}
