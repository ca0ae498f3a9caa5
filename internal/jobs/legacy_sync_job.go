package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// notificationFlusher drains queued legacy store notifications.
// Implemented by the legacy dispatcher.
type notificationFlusher interface {
	Flush(ctx context.Context) error
	PendingCount() int
}

// LegacySyncJob retries legacy store notifications that failed at commit
// time. Runs every 30 seconds; a run with an empty queue is a no-op.
type LegacySyncJob struct {
	flusher notificationFlusher
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLegacySyncJob creates a new job for draining the legacy retry queue.
func NewLegacySyncJob(flusher notificationFlusher, logger *slog.Logger) *LegacySyncJob {
	return &LegacySyncJob{
		flusher: flusher,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "legacy_sync_job"),
	}
}

// Start begins the legacy sync job to run every 30 seconds.
func (j *LegacySyncJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if j.flusher.PendingCount() == 0 {
			return
		}

		if err := j.flusher.Flush(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Legacy sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Legacy sync job started (running every 30 seconds)")
	return nil
}

// Stop stops the legacy sync job.
func (j *LegacySyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Legacy sync job stopped")
}
