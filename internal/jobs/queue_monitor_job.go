package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// QueueMonitorJob periodically logs the state of the kitchen queue.
// Runs every minute and reports how many orders sit in each active status,
// giving operators a heartbeat of the kitchen without a metrics stack.
type QueueMonitorJob struct {
	handler queries.GetOrderQueueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueMonitorJob creates a new job for queue depth monitoring.
func NewQueueMonitorJob(handler queries.GetOrderQueueQueryHandler, logger *slog.Logger) *QueueMonitorJob {
	return &QueueMonitorJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "queue_monitor_job"),
	}
}

// Start begins the queue monitor job to run every minute.
func (j *QueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		queue, err := j.handler.Handle(ctx, queries.NewGetOrderQueueQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue monitor job failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, entry := range queue {
			byStatus[entry.Status]++
		}

		j.logger.InfoContext(ctx, "Queue depth",
			"total", len(queue),
			"pending", byStatus["PENDING"],
			"in_preparation", byStatus["IN_PREPARATION"],
			"ready", byStatus["READY"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue monitor job started (running every minute)")
	return nil
}

// Stop stops the queue monitor job.
func (j *QueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue monitor job stopped")
}
