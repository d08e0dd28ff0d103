// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the supply-chain service.
//
// # Available Jobs
//
// 1. StalledOrderJob - Periodically scans for orders stuck in Pending past a
// threshold and logs them for operator attention.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stalledOrdersHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stalled order scan logs query failures and keeps running; a transient
// database error must not take the scheduler down.
package jobs
