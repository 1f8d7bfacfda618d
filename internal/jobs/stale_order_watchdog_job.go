package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleOrderThreshold is how long an order may sit in preparation before the
// watchdog flags it.
const staleOrderThreshold = 30 * time.Minute

// StaleOrderWatchdogJob flags orders that have been in preparation for too
// long. Runs every minute; a flagged order usually means the pizzaiolo
// claimed it and walked away without marking it ready.
type StaleOrderWatchdogJob struct {
	handler queries.GetOrderQueueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderWatchdogJob creates a new watchdog for stuck orders.
func NewStaleOrderWatchdogJob(handler queries.GetOrderQueueQueryHandler, logger *slog.Logger) *StaleOrderWatchdogJob {
	return &StaleOrderWatchdogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_watchdog_job"),
	}
}

// Start begins the watchdog job to run every minute.
func (j *StaleOrderWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		queue, err := j.handler.Handle(ctx, queries.NewGetOrderQueueQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order watchdog job failed", "error", err)
			return
		}

		now := time.Now().UTC()
		for _, entry := range queue {
			if entry.Status != "IN_PREPARATION" || entry.StartedAt == nil {
				continue
			}

			inPreparation := now.Sub(*entry.StartedAt)
			if inPreparation > staleOrderThreshold {
				j.logger.WarnContext(ctx, "Order stuck in preparation",
					"code", entry.Code,
					"in_preparation_for", inPreparation.Round(time.Second).String(),
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watchdog job started (running every minute)")
	return nil
}

// Stop stops the watchdog job.
func (j *StaleOrderWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watchdog job stopped")
}
