package handler

import (
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateAnnouncementRequest represents the request for posting an announcement
type CreateAnnouncementRequest struct {
	Title    string `json:"title" example:"Gotong-royong perdana"`
	Category string `json:"category,omitempty" example:"Aktiviti"`
	Content  string `json:"content" example:"Semua penduduk dijemput hadir pada hari Ahad ini."`
	Image    string `json:"image,omitempty"`
}

// UpdateAnnouncementRequest represents a partial announcement update
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Content  *string `json:"content,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// AnnouncementHandler handles announcement board HTTP requests
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler creates a new AnnouncementHandler instance
func NewAnnouncementHandler(announcementService service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// ListAnnouncements returns every announcement, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Announcement} "Announcements"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	posts, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list announcements")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Senarai pengumuman", posts)
}

// GetAnnouncement returns one announcement
// @Summary Get announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=models.Announcement} "Announcement"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Router /api/v1/announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.announcementService.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("announcement_id", id).Error("Failed to get announcement")
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "Pengumuman ditemui", post)
}

// CreateAnnouncement posts a new announcement and returns the reloaded board
// @Summary Create announcement
// @Description Title and content are required. Category defaults to Umum.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} utils.APIResponse{data=[]models.Announcement} "Reloaded announcements"
// @Failure 400 {object} utils.APIResponse "Missing title or content"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	posts, err := h.announcementService.Create(c.Request.Context(), service.AnnouncementInput{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Image:    req.Image,
	}, identity.ID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create announcement")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithField("admin_id", identity.ID).Info("Announcement created successfully")
	utils.CreatedResponse(c, "Pengumuman berjaya disiarkan", posts)
}

// UpdateAnnouncement merges the provided fields into an announcement
// @Summary Update announcement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param request body UpdateAnnouncementRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=[]models.Announcement} "Reloaded announcements"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Router /api/v1/admin/announcements/{id} [patch]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	posts, err := h.announcementService.Update(c.Request.Context(), id, service.AnnouncementUpdate{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Image:    req.Image,
	})
	if err != nil {
		h.logger.WithError(err).WithField("announcement_id", id).Error("Failed to update announcement")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pengumuman dikemas kini", posts)
}

// DeleteAnnouncement removes an announcement permanently
// @Summary Delete announcement
// @Description Irreversible. Must be sent with confirm=true.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param confirm query bool true "Confirmation"
// @Success 200 {object} utils.APIResponse{data=[]models.Announcement} "Reloaded announcements"
// @Failure 404 {object} utils.APIResponse "Data not found"
// @Failure 428 {object} utils.APIResponse "Confirmation required"
// @Router /api/v1/admin/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	posts, err := h.announcementService.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("announcement_id", id).Error("Failed to delete announcement")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithField("announcement_id", id).Info("Announcement deleted successfully")
	utils.SuccessResponse(c, "Pengumuman dipadam", posts)
}
