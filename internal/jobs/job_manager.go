package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	legacySyncJob *LegacySyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(flusher notificationFlusher, logger *slog.Logger) *JobManager {
	return &JobManager{
		legacySyncJob: NewLegacySyncJob(flusher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.legacySyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start legacy sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.legacySyncJob.Stop()
}
