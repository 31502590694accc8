// Package jobs provides scheduled background tasks for the shop order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order lifecycle.
//
// # Available Jobs
//
// 1. AutoConfirmReceiptJob - Runs every minute and confirms receipt of orders
// delivered longer ago than the configured grace period.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderRepo, markReceivedHandler, confirmAfter, logger)
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
// The auto-confirm job treats state conflicts as expected: an order whose
// receipt was confirmed by the customer between listing and locking is simply
// skipped. Everything else is logged and retried on the next tick.
package jobs
