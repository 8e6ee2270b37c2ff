package jobs

import (
	"context"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CleanupRunner schedules the daily sweep of expired offers.
type CleanupRunner struct {
	cleanupUC domain.CleanupUsecase
	schedule  string
	graceDays int
	cron      *cron.Cron
}

func NewCleanupRunner(cleanupUC domain.CleanupUsecase, schedule string, graceDays int) *CleanupRunner {
	return &CleanupRunner{
		cleanupUC: cleanupUC,
		schedule:  schedule,
		graceDays: graceDays,
		cron:      cron.New(),
	}
}

// Start registers the schedule and launches the cron loop.
func (r *CleanupRunner) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.run); err != nil {
		return err
	}
	r.cron.Start()
	logger.Log.Info("Offer cleanup scheduled", "schedule", r.schedule, "grace_days", r.graceDays)
	return nil
}

// Stop waits for an in-flight run to finish.
func (r *CleanupRunner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *CleanupRunner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deleted, err := r.cleanupUC.DeleteClosedOffers(ctx, time.Now(), r.graceDays)
	if err != nil {
		logger.Log.Error("Offer cleanup failed", "error", err)
		return
	}
	logger.Log.Info("Offer cleanup finished", "deleted", deleted)
}
