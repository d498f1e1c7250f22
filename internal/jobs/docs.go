// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order pipeline.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain the status event
// outbox, fan notifications out to the interested parties, and push them over
// the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. Each tick drains a bounded batch, oldest events first.
//
// # Error Handling
//
// - An empty outbox is an expected business scenario and is not logged
// - Incomplete push delivery is logged as a warning; events stay published
// - Any other failure rolls the batch back and is retried on the next tick
package jobs
