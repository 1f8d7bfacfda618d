package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueMonitorJob       *QueueMonitorJob
	staleOrderWatchdogJob *StaleOrderWatchdogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Both jobs observe the queue through the same query handler.
func NewJobManager(
	queueHandler queries.GetOrderQueueQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueMonitorJob:       NewQueueMonitorJob(queueHandler, logger),
		staleOrderWatchdogJob: NewStaleOrderWatchdogJob(queueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue monitor job: %w", err)
	}

	if err := jm.staleOrderWatchdogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.queueMonitorJob.Stop()
		return fmt.Errorf("failed to start stale order watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderWatchdogJob.Stop()
	jm.queueMonitorJob.Stop()
}
