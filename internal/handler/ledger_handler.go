package handler

import (
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BulkFeeRequest represents the request for bulk security fee creation
type BulkFeeRequest struct {
	ProfileIDs []string `json:"profile_ids,omitempty"` // Empty means all approved members
	Month      int      `json:"month" example:"3"`
	Year       int      `json:"year" example:"2024"`
}

// ConfirmFeeRequest represents the request for marking security fees as paid
type ConfirmFeeRequest struct {
	IDs []uint `json:"ids"`
}

// LedgerHandler handles security fee ledger HTTP requests
type LedgerHandler struct {
	ledgerService service.LedgerService
	logger        *logger.Logger
}

// NewLedgerHandler creates a new LedgerHandler instance
func NewLedgerHandler(ledgerService service.LedgerService, logger *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// GetMySecurityFees returns the signed-in member's security fee ledger for a year
// @Summary Get own security fees
// @Description Entries numbered by month with Malay month names and a payment link on outstanding rows. The summary covers the whole year regardless of the filter.
// @Tags security-fees
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Param status query string false "Filter" Enums(semua, selesai, tertunggak)
// @Success 200 {object} utils.APIResponse{data=response.LedgerResponse} "Ledger"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/me/security-fees [get]
func (h *LedgerHandler) GetMySecurityFees(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	year, ok := queryYear(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.MemberLedger(c.Request.Context(), identity.ID, year, c.Query("status"))
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"profile_id": identity.ID,
			"year":       year,
		}).Error("Failed to get security fees")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Kutipan sekuriti", ledger)
}

// ListSecurityFees returns every member's entries for a year
// @Summary List security fees
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Param status query string false "Filter" Enums(semua, selesai, tertunggak)
// @Success 200 {object} utils.APIResponse{data=[]response.FeeEntryResponse} "Entries"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/security-fees [get]
func (h *LedgerHandler) ListSecurityFees(c *gin.Context) {
	year, ok := queryYear(c)
	if !ok {
		return
	}

	entries, err := h.ledgerService.ListYear(c.Request.Context(), year, c.Query("status"))
	if err != nil {
		h.logger.WithError(err).WithField("year", year).Error("Failed to list security fees")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Senarai kutipan sekuriti", entries)
}

// CreateBulkSecurityFees creates outstanding entries for a month
// @Summary Create bulk security fees
// @Description Create outstanding entries for the given profile IDs, or all approved members when profile_ids is empty. Existing entries are skipped.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkFeeRequest true "Month, year and optional profile IDs"
// @Success 200 {object} utils.APIResponse{data=response.BulkFeeResponse} "Bulk creation result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/admin/security-fees/bulk [post]
func (h *LedgerHandler) CreateBulkSecurityFees(c *gin.Context) {
	var req BulkFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	result, err := h.ledgerService.BulkCreate(c.Request.Context(), req.Month, req.Year, req.ProfileIDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create security fees")
		utils.AppErrorResponse(c, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"month":     result.Month,
		"year":      result.Year,
		"requested": result.Requested,
		"created":   result.Created,
		"skipped":   result.Skipped,
	}).Info("Security fees created successfully")

	utils.SuccessResponse(c, "Kutipan sekuriti dicipta", result)
}

// ConfirmSecurityFees marks entries as paid
// @Summary Confirm security fee payment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConfirmFeeRequest true "Entry IDs"
// @Success 200 {object} utils.APIResponse{data=response.ConfirmFeeResponse} "Confirmed entries"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/admin/security-fees/confirm [post]
func (h *LedgerHandler) ConfirmSecurityFees(c *gin.Context) {
	var req ConfirmFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, invalidBodyMessage, err)
		return
	}

	result, err := h.ledgerService.ConfirmPayment(c.Request.Context(), req.IDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to confirm security fees")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pembayaran disahkan", result)
}

// ExportSecurityFees downloads a year's entries as Excel
// @Summary Export security fees
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Param status query string false "Filter" Enums(semua, selesai, tertunggak)
// @Success 200 {file} file "Security fee workbook"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/admin/security-fees/export [get]
func (h *LedgerHandler) ExportSecurityFees(c *gin.Context) {
	year, ok := queryYear(c)
	if !ok {
		return
	}

	data, filename, err := h.ledgerService.ExportYear(c.Request.Context(), year, c.Query("status"))
	if err != nil {
		h.logger.WithError(err).WithField("year", year).Error("Failed to export security fees")
		utils.AppErrorResponse(c, err)
		return
	}
	sendSpreadsheet(c, data, filename)
}
