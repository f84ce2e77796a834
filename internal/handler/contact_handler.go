package handler

import (
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContactRequest represents a message sent through the contact form
type ContactRequest struct {
	Name    string `json:"name" example:"Ahmad Bin Ali"`
	Email   string `json:"email" example:"ahmad@example.com"`
	Phone   string `json:"phone,omitempty" example:"0123456789"`
	Subject string `json:"subject" example:"Pertanyaan keahlian"`
	Message string `json:"message" example:"Bagaimana cara untuk memperbaharui keahlian?"`
}

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	contactService service.ContactService
	logger         *logger.Logger
}

// NewContactHandler creates a new ContactHandler instance
func NewContactHandler(contactService service.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// SubmitContact stores a contact form message
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 201 {object} utils.APIResponse{data=models.ContactMessage} "Message received"
// @Failure 400 {object} utils.APIResponse "Validation failed"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /api/v1/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to submit contact message")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, service.ContactSuccessMessage, msg)
}

// ListContactMessages returns contact messages, newest first
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.ContactMessage} "Messages"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/contact-messages [get]
func (h *ContactHandler) ListContactMessages(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	messages, total, err := h.contactService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list contact messages")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Senarai mesej", messages, page, limit, total)
}
