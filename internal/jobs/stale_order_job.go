package jobs

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob manages the scheduled sweep of abandoned orders.
// Runs every minute to cancel pending orders older than the configured TTL.
type StaleOrderJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates a new job for cancelling stale orders.
// Uses CancelStaleOrdersCommandHandler to sweep pending orders every minute.
func NewStaleOrderJob(handler commands.CancelStaleOrdersCommandHandler, ttl time.Duration, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale-order sweep to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled, "ttl", j.ttl.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep started (running every minute)")
	return nil
}

// Stop stops the stale-order sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep stopped")
}
