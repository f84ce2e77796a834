package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ModerationDigestCode identifies the digest job in scheduler_logs
const ModerationDigestCode = "MODERATION_DIGEST"

const jobTimeout = 2 * time.Minute

// ModerationScheduler reports pending registrations on a cron schedule
type ModerationScheduler struct {
	moderationService service.ModerationService
	schedulerLogRepo  repository.SchedulerLogRepository
	logger            *logger.Logger
	cron              *cron.Cron
	cronExpression    string
	staleAfter        time.Duration
	now               func() time.Time
}

// NewModerationScheduler creates a new moderation scheduler
func NewModerationScheduler(
	moderationService service.ModerationService,
	schedulerLogRepo repository.SchedulerLogRepository,
	logger *logger.Logger,
	cronExpression string,
	staleAfter time.Duration,
) *ModerationScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &ModerationScheduler{
		moderationService: moderationService,
		schedulerLogRepo:  schedulerLogRepo,
		logger:            logger,
		cron:              c,
		cronExpression:    cronExpression,
		staleAfter:        staleAfter,
		now:               time.Now,
	}
}

// Start schedules the digest job and starts the cron runner
func (s *ModerationScheduler) Start() error {
	s.logger.Info("Starting moderation scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling moderation digest job")
	_, err := s.cron.AddFunc(s.cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		s.RunDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule moderation digest job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Moderation scheduler started successfully")

	return nil
}

// Stop waits for a running job and stops the scheduler
func (s *ModerationScheduler) Stop() {
	s.logger.Info("Stopping moderation scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Moderation scheduler stopped successfully")
}

// RunDigest loads the queue and records the digest. It returns the run id.
func (s *ModerationScheduler) RunDigest(ctx context.Context) string {
	runID := uuid.New().String()
	now := s.now()

	s.logRun(ctx, runID, "Starting scheduled moderation digest", models.SchedulerStart)

	runningMessage := fmt.Sprintf("Counting pending registrations older than %s", s.staleAfter)
	s.logRun(ctx, runID, runningMessage, models.SchedulerRunning)

	profiles, err := s.moderationService.Load(ctx)
	if err != nil {
		s.logRun(ctx, runID, fmt.Sprintf("Failed to load moderation queue: %v", err), models.SchedulerFailed)
		s.logger.WithError(err).Error("Moderation digest failed")
		return runID
	}

	digest := service.BuildDigest(profiles, now, s.staleAfter)
	digestJSON, _ := json.Marshal(digest)
	s.logRun(ctx, runID, fmt.Sprintf("Moderation digest completed: %s", digestJSON), models.SchedulerSuccess)

	entry := s.logger.WithFields(map[string]interface{}{
		"run_id":  runID,
		"pending": digest.Pending,
		"stale":   digest.Stale,
	})
	if digest.Stale > 0 {
		entry.Warn("Pending registrations are waiting for review")
	} else {
		entry.Info("Moderation digest completed")
	}

	return runID
}

// logRun writes one scheduler_logs row; failures are only logged
func (s *ModerationScheduler) logRun(ctx context.Context, runID, message, status string) {
	entry := &models.SchedulerLog{
		RunID:         runID,
		SchedulerCode: ModerationDigestCode,
		Message:       message,
		Status:        status,
		CreatedAt:     s.now(),
	}

	if err := s.schedulerLogRepo.CreateLog(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
		return
	}
	s.logger.WithFields(map[string]interface{}{
		"status": status,
		"run_id": runID,
	}).Debug("Scheduler log entry created")
}
