// Package jobs provides scheduled background tasks for the fulfilment
// back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LegacySyncJob - Runs every 30 seconds to retry legacy store manager
// notifications that failed at commit time.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run with an empty retry queue is a no-op. Notifications that fail again
// stay queued for the next run; only unexpected flush errors are logged.
package jobs
