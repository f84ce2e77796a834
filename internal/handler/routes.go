package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"strata-be-svc/internal/middleware"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	registrationService service.RegistrationService,
	profileService service.ProfileService,
	moderationService service.ModerationService,
	announcementService service.AnnouncementService,
	ledgerService service.LedgerService,
	contactService service.ContactService,
	limiter *middleware.RateLimiter,
	allowedOrigins []string,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, allowedOrigins, logger)
	registrationHandler := NewRegistrationHandler(registrationService, logger)
	profileHandler := NewProfileHandler(profileService, logger)
	moderationHandler := NewModerationHandler(moderationService, logger)
	announcementHandler := NewAnnouncementHandler(announcementService, logger)
	ledgerHandler := NewLedgerHandler(ledgerService, logger)
	contactHandler := NewContactHandler(contactService, logger)

	requireAuth := middleware.RequireAuth(authService)
	rateLimit := middleware.RateLimit(limiter)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/sign-in", rateLimit, authHandler.SignIn)
			authRoutes.POST("/password-reset", rateLimit, authHandler.RequestPasswordReset)
			authRoutes.POST("/password-reset/confirm", rateLimit, authHandler.ConfirmPasswordReset)
			authRoutes.POST("/claim", rateLimit, authHandler.ClaimAccount)
			authRoutes.POST("/sign-out", requireAuth, authHandler.SignOut)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
			authRoutes.GET("/stream", requireAuth, authHandler.Stream)
		}

		// Registration routes
		registrations := v1.Group("/registrations")
		{
			registrations.POST("", rateLimit, registrationHandler.Register)
			registrations.POST("/drafts", rateLimit, registrationHandler.CreateDraft)
			registrations.GET("/drafts/:id", registrationHandler.GetDraft)
			registrations.DELETE("/drafts/:id", registrationHandler.DeleteDraft)
			registrations.POST("/drafts/:id/rows/:kind", registrationHandler.AddDraftRow)
			registrations.PUT("/drafts/:id/rows/:kind/:no", registrationHandler.UpdateDraftRow)
			registrations.DELETE("/drafts/:id/rows/:kind/:no", registrationHandler.RemoveDraftRow)
		}

		// Public announcement routes
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", announcementHandler.ListAnnouncements)
			announcements.GET("/:id", announcementHandler.GetAnnouncement)
		}

		// Contact form
		v1.POST("/contact", rateLimit, contactHandler.SubmitContact)

		// Member self-service routes
		me := v1.Group("/me", requireAuth)
		{
			me.GET("/profile", profileHandler.GetMyProfile)
			me.PATCH("/profile", profileHandler.UpdateMyProfile)
			me.GET("/security-fees", ledgerHandler.GetMySecurityFees)
		}

		// Admin routes
		admin := v1.Group("/admin", requireAuth, middleware.RequireAdmin())
		{
			admin.GET("/dashboard", moderationHandler.GetDashboard)
			admin.GET("/documents", moderationHandler.ListDocuments)

			members := admin.Group("/members")
			{
				members.GET("", moderationHandler.ListMembers)
				members.GET("/export", moderationHandler.ExportMembers)
				members.POST("/import", moderationHandler.ImportMembers)
				members.GET("/:id", moderationHandler.GetMember)
				members.POST("/:id/approve", moderationHandler.ApproveMember)
				members.POST("/:id/reject", moderationHandler.RejectMember)
			}

			adminAnnouncements := admin.Group("/announcements")
			{
				adminAnnouncements.POST("", announcementHandler.CreateAnnouncement)
				adminAnnouncements.PATCH("/:id", announcementHandler.UpdateAnnouncement)
				adminAnnouncements.DELETE("/:id", announcementHandler.DeleteAnnouncement)
			}

			fees := admin.Group("/security-fees")
			{
				fees.GET("", ledgerHandler.ListSecurityFees)
				fees.GET("/export", ledgerHandler.ExportSecurityFees)
				fees.POST("/bulk", ledgerHandler.CreateBulkSecurityFees)
				fees.POST("/confirm", ledgerHandler.ConfirmSecurityFees)
			}

			admin.GET("/contact-messages", contactHandler.ListContactMessages)
		}
	}
}

// HealthCheck reports that the server is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Server is running"
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Strata Backend Service",
	})
}
