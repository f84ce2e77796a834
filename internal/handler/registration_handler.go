package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strings"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles registration intake and draft HTTP requests
type RegistrationHandler struct {
	registrationService service.RegistrationService
	logger              *logger.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler instance
func NewRegistrationHandler(registrationService service.RegistrationService, logger *logger.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register submits a membership application
// @Summary Submit registration
// @Description Create an identity and a pending member profile. Household and vehicles are JSON arrays; when draft_id is given the draft rows are used instead.
// @Tags registrations
// @Accept multipart/form-data
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password (minimum 6 characters)"
// @Param full_name formData string true "Full name"
// @Param national_id formData string true "National ID"
// @Param ethnicity formData string false "Ethnicity"
// @Param house_no formData string false "House number"
// @Param street formData string false "Street"
// @Param phone formData string true "Phone"
// @Param membership_tags formData []string false "Membership tags"
// @Param household formData string false "Household rows as JSON"
// @Param vehicles formData string false "Vehicle rows as JSON"
// @Param draft_id formData string false "Registration draft ID"
// @Param document formData file false "Eligibility document (pdf, jpeg, png; max 5 MiB)"
// @Success 201 {object} utils.APIResponse{data=response.ProfileDetailResponse} "Registration submitted"
// @Failure 400 {object} utils.APIResponse "Validation failed or document type not allowed"
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Failure 413 {object} utils.APIResponse "Document too large"
// @Router /api/v1/registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	input := &service.RegistrationInput{
		Email:      c.PostForm("email"),
		Password:   c.PostForm("password"),
		FullName:   strings.TrimSpace(c.PostForm("full_name")),
		NationalID: strings.TrimSpace(c.PostForm("national_id")),
		Ethnicity:  strings.TrimSpace(c.PostForm("ethnicity")),
		Address: models.Address{
			HouseNo: strings.TrimSpace(c.PostForm("house_no")),
			Street:  strings.TrimSpace(c.PostForm("street")),
		},
		Phone:          strings.TrimSpace(c.PostForm("phone")),
		MembershipTags: c.PostFormArray("membership_tags"),
		DraftID:        strings.TrimSpace(c.PostForm("draft_id")),
	}

	if err := decodeFormRows(c.PostForm("household"), &input.Household); err != nil {
		h.logger.WithError(err).Error("Invalid household rows")
		utils.AppErrorResponse(c, errcode.Wrap(errcode.ValidationFailed, err))
		return
	}
	if err := decodeFormRows(c.PostForm("vehicles"), &input.Vehicles); err != nil {
		h.logger.WithError(err).Error("Invalid vehicle rows")
		utils.AppErrorResponse(c, errcode.Wrap(errcode.ValidationFailed, err))
		return
	}

	if file, err := c.FormFile("document"); err == nil {
		doc, err := readDocument(file)
		if err != nil {
			h.logger.WithError(err).Error("Failed to read document")
			utils.InternalServerErrorResponse(c, errcode.GenericMessage, nil)
			return
		}
		input.Document = doc
	}

	profile, err := h.registrationService.Register(c.Request.Context(), input)
	if err != nil {
		h.logger.WithError(err).WithField("email", input.Email).Error("Failed to register member")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"profile_id": profile.ID,
		"household":  len(profile.Household),
		"vehicles":   len(profile.Vehicles),
	}).Info("Registration submitted successfully")

	utils.CreatedResponse(c, "Pendaftaran berjaya dihantar dan sedang menunggu kelulusan", response.NewProfileDetailResponse(profile))
}

// decodeFormRows parses a JSON array form field; an empty field leaves rows untouched
func decodeFormRows(raw string, rows interface{}) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), rows)
}

// readDocument reads at most one byte past the limit so oversize files still fail validation
func readDocument(file *multipart.FileHeader) (*service.DocumentUpload, error) {
	opened, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()

	data, err := io.ReadAll(io.LimitReader(opened, service.MaxDocumentSize+1))
	if err != nil {
		return nil, err
	}

	return &service.DocumentUpload{FileName: file.Filename, Data: data}, nil
}

// CreateDraft starts a server-side registration draft
// @Summary Create registration draft
// @Description Create a draft with one blank household row and one blank vehicle row
// @Tags registrations
// @Produce json
// @Success 201 {object} utils.APIResponse{data=response.DraftResponse} "Draft created"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/registrations/drafts [post]
func (h *RegistrationHandler) CreateDraft(c *gin.Context) {
	draft, err := h.registrationService.CreateDraft(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create draft")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, "Draf dicipta", draft)
}

// GetDraft returns a registration draft
// @Summary Get registration draft
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} utils.APIResponse{data=response.DraftResponse} "Draft"
// @Failure 404 {object} utils.APIResponse "Draft not found or expired"
// @Router /api/v1/registrations/drafts/{id} [get]
func (h *RegistrationHandler) GetDraft(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	draft, err := h.registrationService.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("draft_id", id).Error("Failed to get draft")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Draf ditemui", draft)
}

// AddDraftRow appends a blank row to one table of a draft
// @Summary Add draft row
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Param kind path string true "Row table" Enums(household, vehicles)
// @Success 200 {object} utils.APIResponse{data=response.DraftResponse} "Row added"
// @Failure 400 {object} utils.APIResponse "Unknown row table"
// @Failure 404 {object} utils.APIResponse "Draft not found or expired"
// @Router /api/v1/registrations/drafts/{id}/rows/{kind} [post]
func (h *RegistrationHandler) AddDraftRow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	kind := service.RowKind(c.Param("kind"))

	draft, err := h.registrationService.AddDraftRow(c.Request.Context(), id, kind)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"draft_id": id,
			"kind":     kind,
		}).Error("Failed to add draft row")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Baris ditambah", draft)
}

// UpdateDraftRow replaces the fields of one numbered row
// @Summary Update draft row
// @Description Body is a household row (name, relationship, phone) or a vehicle row (model, plate_number, sticker_number) depending on kind
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param kind path string true "Row table" Enums(household, vehicles)
// @Param no path int true "Row number, starting at 1"
// @Param request body models.HouseholdRow true "Row fields"
// @Success 200 {object} utils.APIResponse{data=response.DraftResponse} "Row updated"
// @Failure 400 {object} utils.APIResponse "Invalid row"
// @Failure 404 {object} utils.APIResponse "Draft not found or expired"
// @Router /api/v1/registrations/drafts/{id}/rows/{kind}/{no} [put]
func (h *RegistrationHandler) UpdateDraftRow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	no, ok := pathInt(c, "no")
	if !ok {
		return
	}

	var (
		draft *response.DraftResponse
		err   error
	)
	switch service.RowKind(c.Param("kind")) {
	case service.RowsHousehold:
		var row models.HouseholdRow
		if err := c.ShouldBindJSON(&row); err != nil {
			utils.BadRequestResponse(c, invalidBodyMessage, err)
			return
		}
		draft, err = h.registrationService.UpdateHouseholdRow(c.Request.Context(), id, no, row)
	case service.RowsVehicles:
		var row models.VehicleRow
		if err := c.ShouldBindJSON(&row); err != nil {
			utils.BadRequestResponse(c, invalidBodyMessage, err)
			return
		}
		draft, err = h.registrationService.UpdateVehicleRow(c.Request.Context(), id, no, row)
	default:
		err = errcode.New(errcode.DraftInvalidRowKind)
	}

	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"draft_id": id,
			"row":      no,
		}).Error("Failed to update draft row")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Baris dikemas kini", draft)
}

// RemoveDraftRow removes one numbered row; the last remaining row is kept
// @Summary Remove draft row
// @Description Remove a row. When only one row remains nothing is removed and removed=false is returned.
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Param kind path string true "Row table" Enums(household, vehicles)
// @Param no path int true "Row number, starting at 1"
// @Success 200 {object} utils.APIResponse{data=response.RowRemovalResponse} "Removal result"
// @Failure 400 {object} utils.APIResponse "Unknown row table"
// @Failure 404 {object} utils.APIResponse "Draft not found or expired"
// @Router /api/v1/registrations/drafts/{id}/rows/{kind}/{no} [delete]
func (h *RegistrationHandler) RemoveDraftRow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	no, ok := pathInt(c, "no")
	if !ok {
		return
	}
	kind := service.RowKind(c.Param("kind"))

	result, err := h.registrationService.RemoveDraftRow(c.Request.Context(), id, kind, no)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"draft_id": id,
			"kind":     kind,
			"row":      no,
		}).Error("Failed to remove draft row")
		utils.AppErrorResponse(c, err)
		return
	}

	message := "Baris dipadam"
	if !result.Removed {
		message = "Sekurang-kurangnya satu baris diperlukan"
	}
	utils.SuccessResponse(c, message, result)
}

// DeleteDraft discards a registration draft
// @Summary Delete registration draft
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} utils.APIResponse "Draft deleted"
// @Router /api/v1/registrations/drafts/{id} [delete]
func (h *RegistrationHandler) DeleteDraft(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.registrationService.DeleteDraft(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("draft_id", id).Error("Failed to delete draft")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Draf dipadam", nil)
}
