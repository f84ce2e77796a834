package handler

import (
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest represents a partial update of the member's own profile.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FullName       *string                `json:"full_name,omitempty"`
	NationalID     *string                `json:"national_id,omitempty"`
	Ethnicity      *string                `json:"ethnicity,omitempty"`
	Phone          *string                `json:"phone,omitempty"`
	HouseNo        *string                `json:"house_no,omitempty"`
	Street         *string                `json:"street,omitempty"`
	MembershipTags *[]string              `json:"membership_tags,omitempty"`
	Household      *[]models.HouseholdRow `json:"household,omitempty"`
	Vehicles       *[]models.VehicleRow   `json:"vehicles,omitempty"`
}

// ProfileHandler handles member self-service HTTP requests
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *logger.Logger
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profileService service.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetMyProfile returns the profile of the signed-in member
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.ProfileDetailResponse} "Profile"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Router /api/v1/me/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwn(c.Request.Context(), identity.ID)
	if err != nil {
		h.logger.WithError(err).WithField("profile_id", identity.ID).Error("Failed to get profile")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profil ditemui", profile)
}

// UpdateMyProfile merges personal fields, household and vehicles into the member's profile
// @Summary Update own profile
// @Description Partial update. Status, role and moderation decisions cannot be changed here.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response.ProfileDetailResponse} "Updated profile"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Router /api/v1/me/profile [patch]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	profile, err := h.profileService.UpdateOwn(c.Request.Context(), identity.ID, service.ProfileUpdate{
		FullName:       req.FullName,
		NationalID:     req.NationalID,
		Ethnicity:      req.Ethnicity,
		Phone:          req.Phone,
		HouseNo:        req.HouseNo,
		Street:         req.Street,
		MembershipTags: req.MembershipTags,
		Household:      req.Household,
		Vehicles:       req.Vehicles,
	})
	if err != nil {
		h.logger.WithError(err).WithField("profile_id", identity.ID).Error("Failed to update profile")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithField("profile_id", identity.ID).Info("Profile updated successfully")
	utils.SuccessResponse(c, "Profil dikemas kini", profile)
}
