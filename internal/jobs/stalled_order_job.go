package jobs

import (
	"context"
	"log/slog"
	"time"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalledOrderJob periodically scans for orders that have sat in Pending past
// a threshold and logs them. The dashboard polls order state but nothing in
// the workflow nudges a manufacturer; this job gives operators the signal.
type StalledOrderJob struct {
	handler   queries.GetStalledOrdersQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalledOrderJob creates a job scanning for orders pending longer than olderThan.
func NewStalledOrderJob(
	handler queries.GetStalledOrdersQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StalledOrderJob {
	return &StalledOrderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stalled_order_job"),
	}
}

// Start begins the stalled order scan, running every ten minutes.
func (j *StalledOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalledOrdersQuery(j.olderThan)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stalled order scan misconfigured", "error", queryErr)
			return
		}

		stalled, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stalled order scan failed", "error", handleErr)
			return
		}

		for _, o := range stalled {
			j.logger.WarnContext(ctx, "Order awaiting manufacturer decision",
				"order_id", o.ID.String(),
				"custodian_id", o.CustodianID.String(),
				"pending_since", o.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled order job started (running every ten minutes)")
	return nil
}

// Stop stops the stalled order job.
func (j *StalledOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled order job stopped")
}
