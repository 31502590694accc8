package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoConfirmReceiptJob *AutoConfirmReceiptJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the order repository and command handler as dependencies to wire up
// the job execution.
func NewJobManager(
	orderRepo ports.OrderRepository,
	markReceivedHandler commands.MarkReceivedCommandHandler,
	confirmAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoConfirmReceiptJob: NewAutoConfirmReceiptJob(orderRepo, markReceivedHandler, confirmAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoConfirmReceiptJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto confirm receipt job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoConfirmReceiptJob.Stop()
}
