// Package jobs provides scheduled background tasks for the café system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the service needs.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel pending orders older than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * *", running once a minute. An
// order abandoned at Pending stays visible for at most TTL plus one minute.
//
// # Error Handling
//
// - Sweep errors are logged and the job retries on the next tick
// - A failed job start is returned to the caller so startup can abort
package jobs
