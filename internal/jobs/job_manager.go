package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"supplychain/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalledOrderJob *StalledOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	stalledOrdersHandler queries.GetStalledOrdersQueryHandler,
	stalledThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalledOrderJob: NewStalledOrderJob(stalledOrdersHandler, stalledThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalledOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stalled order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalledOrderJob.Stop()
}
