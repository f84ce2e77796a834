package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"strata-be-svc/docs"
	"strata-be-svc/internal/auth"
	"strata-be-svc/internal/cache"
	"strata-be-svc/internal/config"
	"strata-be-svc/internal/database"
	"strata-be-svc/internal/handler"
	"strata-be-svc/internal/middleware"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
	"strata-be-svc/internal/scheduler"
	"strata-be-svc/internal/service"
	"strata-be-svc/internal/storage"
	"strata-be-svc/pkg/logger"
)

// @title Strata Backend Service API
// @version 1.0
// @description RESTful API for the Strata residents' association portal

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Strata Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for the Strata residents' association portal"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Strata Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize redis
	redisClient, err := cache.NewRedisClient(context.Background(), &cfg.Redis)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to redis")
	}
	appLogger.Info("Redis connected successfully")

	// Initialize document storage
	uploader, err := storage.NewLocalUploader(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to initialize upload storage")
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db.DB)
	profileRepo := repository.NewProfileRepository(db.DB)
	announcementRepo := repository.NewAnnouncementRepository(db.DB)
	feeRepo := repository.NewSecurityFeeRepository(db.DB)
	contactRepo := repository.NewContactRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)
	draftRepo := repository.NewDraftRepository(redisClient)

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	notifier := auth.NewNotifier(16)
	authService := service.NewAuthService(accountRepo, profileRepo, redisClient, tokens, notifier, appLogger, service.AuthOptions{
		ResetTTL:    cfg.JWT.ResetTTL,
		ClaimStatus: models.ProfileStatus(cfg.Registration.ClaimProfileStatus),
		// No mail transport is configured; the token is handed to operators through the log.
		DeliverReset: func(ctx context.Context, email, token string, expiresAt time.Time) {
			appLogger.WithFields(map[string]interface{}{
				"email":      email,
				"token":      token,
				"expires_at": expiresAt,
			}).Debug("Password reset token issued")
		},
	})
	registrationService := service.NewRegistrationService(authService, profileRepo, draftRepo, uploader, appLogger, cfg.Registration.DraftTTL)
	profileService := service.NewProfileService(profileRepo, appLogger)
	moderationService := service.NewModerationService(profileRepo, announcementRepo, notifier, appLogger)
	announcementService := service.NewAnnouncementService(announcementRepo, appLogger)
	ledgerService := service.NewLedgerService(feeRepo, profileRepo, cfg.Ledger, appLogger)
	contactService := service.NewContactService(contactRepo, appLogger)

	// Ensure the bootstrap administrator exists
	if err := authService.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		appLogger.WithField("error", err).Error("Failed to ensure admin account")
	}

	// Start moderation digest scheduler
	digestScheduler := scheduler.NewModerationScheduler(
		moderationService,
		schedulerLogRepo,
		appLogger,
		cfg.Scheduler.ModerationDigestCron,
		cfg.Scheduler.ModerationStaleAfter,
	)
	if err := digestScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start moderation scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Serve uploaded documents when they are published under a local path
	if strings.HasPrefix(cfg.Storage.PublicBaseURL, "/") {
		router.Static(cfg.Storage.PublicBaseURL, uploader.Dir())
	}

	// Setup routes
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	handler.SetupRoutes(
		router,
		authService,
		registrationService,
		profileService,
		moderationService,
		announcementService,
		ledgerService,
		contactService,
		limiter,
		cfg.CORS.Origins(),
		appLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	digestScheduler.Stop()

	if err := redisClient.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close redis connection")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
