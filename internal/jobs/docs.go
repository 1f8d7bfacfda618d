// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the kitchen queue.
//
// # Available Jobs
//
// 1. QueueMonitorJob - Runs every minute to log queue depth per status
// 2. StaleOrderWatchdogJob - Runs every minute to flag orders stuck in preparation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(queueHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs only observe and log; their failures never affect the request
// path and are themselves logged and retried on the next tick.
package jobs
