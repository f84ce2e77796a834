package handler

import (
	"context"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxImportSize bounds the legacy member workbook accepted by the import
const maxImportSize = 10 << 20

// ModerationHandler handles the admin moderation queue HTTP requests
type ModerationHandler struct {
	moderationService service.ModerationService
	logger            *logger.Logger
}

// NewModerationHandler creates a new ModerationHandler instance
func NewModerationHandler(moderationService service.ModerationService, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
		logger:            logger,
	}
}

func memberFilter(c *gin.Context) service.MemberFilter {
	return service.MemberFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
}

// GetDashboard returns the moderation stats and the five most recent registrations
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.DashboardResponse} "Dashboard"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 503 {object} utils.APIResponse "Data unavailable"
// @Router /api/v1/admin/dashboard [get]
func (h *ModerationHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.moderationService.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load dashboard")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Papan pemuka", dashboard)
}

// ListMembers returns the stats and the filtered moderation queue
// @Summary List members
// @Description Status filter (all, pending, approved, rejected) and case-insensitive search on name or email. Filters compose and keep newest-first order.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(all, pending, approved, rejected)
// @Param search query string false "Name or email substring"
// @Success 200 {object} utils.APIResponse{data=response.ModerationSnapshotResponse} "Moderation snapshot"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/members [get]
func (h *ModerationHandler) ListMembers(c *gin.Context) {
	snapshot, err := h.moderationService.Snapshot(c.Request.Context(), memberFilter(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to load moderation queue")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Senarai ahli", snapshot)
}

// GetMember returns the full profile of one member
// @Summary Get member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} utils.APIResponse{data=response.ProfileDetailResponse} "Member profile"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Router /api/v1/admin/members/{id} [get]
func (h *ModerationHandler) GetMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	member, err := h.moderationService.GetMember(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("profile_id", id).Error("Failed to get member")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Maklumat ahli", member)
}

// ApproveMember approves a registration
// @Summary Approve member
// @Description Sets status approved and verified. Must be sent with confirm=true. Returns a full reload.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param confirm query bool true "Confirmation"
// @Success 200 {object} utils.APIResponse{data=response.ModerationSnapshotResponse} "Reloaded snapshot"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Failure 428 {object} utils.APIResponse "Confirmation required"
// @Router /api/v1/admin/members/{id}/approve [post]
func (h *ModerationHandler) ApproveMember(c *gin.Context) {
	h.decide(c, "approve", h.moderationService.Approve, "Ahli telah diluluskan")
}

// RejectMember rejects a registration
// @Summary Reject member
// @Description Sets status rejected and unverified. Must be sent with confirm=true. Returns a full reload.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param confirm query bool true "Confirmation"
// @Success 200 {object} utils.APIResponse{data=response.ModerationSnapshotResponse} "Reloaded snapshot"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Failure 428 {object} utils.APIResponse "Confirmation required"
// @Router /api/v1/admin/members/{id}/reject [post]
func (h *ModerationHandler) RejectMember(c *gin.Context) {
	h.decide(c, "reject", h.moderationService.Reject, "Ahli telah ditolak")
}

func (h *ModerationHandler) decide(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, id, adminID string) (*response.ModerationSnapshotResponse, error),
	message string,
) {
	if !requireConfirmation(c) {
		return
	}
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	snapshot, err := apply(c.Request.Context(), id, identity.ID)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"profile_id": id,
			"action":     action,
		}).Error("Failed to moderate member")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"profile_id": id,
		"admin_id":   identity.ID,
		"action":     action,
	}).Info("Member moderated successfully")

	utils.SuccessResponse(c, message, snapshot)
}

// ListDocuments returns the document registry
// @Summary List documents
// @Description Every non-admin profile with an attached document, with an icon per MIME category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.DocumentEntryResponse} "Documents"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/documents [get]
func (h *ModerationHandler) ListDocuments(c *gin.Context) {
	docs, err := h.moderationService.Documents(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load document registry")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Senarai dokumen", docs)
}

// ExportMembers downloads the (optionally filtered) moderation queue as Excel
// @Summary Export members
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(all, pending, approved, rejected)
// @Param search query string false "Name or email substring"
// @Success 200 {file} file "Members workbook"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/members/export [get]
func (h *ModerationHandler) ExportMembers(c *gin.Context) {
	data, filename, err := h.moderationService.ExportMembers(c.Request.Context(), memberFilter(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to export members")
		utils.AppErrorResponse(c, err)
		return
	}
	sendSpreadsheet(c, data, filename)
}

// ImportMembers creates pending profiles from a legacy member workbook
// @Summary Import members
// @Description Columns: name, email, national id, phone, house no, street. The first row is a header. Duplicate emails are skipped and reported.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Excel workbook (.xlsx)"
// @Success 200 {object} utils.APIResponse{data=response.MemberImportResponse} "Import result"
// @Failure 400 {object} utils.APIResponse "Invalid file"
// @Router /api/v1/admin/members/import [post]
func (h *ModerationHandler) ImportMembers(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.logger.WithError(err).Error("Failed to get file from form")
		utils.AppErrorResponse(c, errcode.Wrap(errcode.ImportInvalidFile, err))
		return
	}
	if file.Size > maxImportSize {
		utils.AppErrorResponse(c, errcode.New(errcode.ImportInvalidFile))
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded file")
		utils.InternalServerErrorResponse(c, errcode.GenericMessage, nil)
		return
	}
	defer opened.Close()

	result, err := h.moderationService.ImportMembers(c.Request.Context(), opened)
	if err != nil {
		h.logger.WithError(err).Error("Failed to import members")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"created": result.Created,
		"skipped": len(result.Skipped),
	}).Info("Members imported successfully")

	utils.SuccessResponse(c, "Import selesai", result)
}
