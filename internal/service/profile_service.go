package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/repository"
	"strata-be-svc/pkg/logger"

	"gorm.io/datatypes"
)

// ProfileUpdate carries the personal fields a member may change. Nil fields are left as they are.
// Status, role and moderation decisions are not part of it.
type ProfileUpdate struct {
	FullName       *string
	NationalID     *string
	Ethnicity      *string
	Phone          *string
	HouseNo        *string
	Street         *string
	MembershipTags *[]string
	Household      *[]models.HouseholdRow
	Vehicles       *[]models.VehicleRow
}

// ProfileService defines the member self-service operations
type ProfileService interface {
	GetOwn(ctx context.Context, profileID string) (*response.ProfileDetailResponse, error)
	UpdateOwn(ctx context.Context, profileID string, input ProfileUpdate) (*response.ProfileDetailResponse, error)
}

// profileService implements ProfileService
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *logger.Logger
	now         func() time.Time
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetOwn returns the caller's profile
func (s *profileService) GetOwn(ctx context.Context, profileID string) (*response.ProfileDetailResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return response.NewProfileDetailResponse(profile), nil
}

// UpdateOwn merges the provided fields into the caller's profile and returns the reloaded profile
func (s *profileService) UpdateOwn(ctx context.Context, profileID string, input ProfileUpdate) (*response.ProfileDetailResponse, error) {
	fields := map[string]interface{}{}

	setRequired := func(column string, value *string) error {
		if value == nil {
			return nil
		}
		v := strings.TrimSpace(*value)
		if v == "" {
			return errcode.New(errcode.ValidationFailed)
		}
		fields[column] = v
		return nil
	}
	setOptional := func(column string, value *string) {
		if value != nil {
			fields[column] = strings.TrimSpace(*value)
		}
	}
	if err := setRequired("full_name", input.FullName); err != nil {
		return nil, err
	}
	if err := setRequired("national_id", input.NationalID); err != nil {
		return nil, err
	}
	if err := setRequired("phone", input.Phone); err != nil {
		return nil, err
	}
	setOptional("ethnicity", input.Ethnicity)
	setOptional("address_house_no", input.HouseNo)
	setOptional("address_street", input.Street)
	if input.MembershipTags != nil {
		fields["membership_tags"] = datatypes.JSONSlice[string](*input.MembershipTags)
	}

	var household []models.HouseholdMember
	var vehicles []models.Vehicle
	if input.Household != nil {
		household = toHouseholdMembers(*input.Household)
	}
	if input.Vehicles != nil {
		vehicles = toVehicles(*input.Vehicles)
	}

	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	fields["updated_at"] = s.now()
	if err := s.profileRepo.UpdateWithRows(ctx, profileID, fields, household, vehicles); err != nil {
		s.logger.WithError(err).WithField("profile_id", profileID).Error("Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.WithField("profile_id", profileID).Info("Profile updated successfully")
	return s.GetOwn(ctx, profileID)
}
