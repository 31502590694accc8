package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AutoConfirmReceiptJob confirms receipt of orders the customer never
// confirmed themselves. Runs every minute and marks as received every order
// that was delivered more than the configured grace period ago.
//
// Each order goes through MarkReceivedCommandHandler, so the confirmation
// takes the same row lock as a customer-triggered one; losing that race is
// expected and not an error.
type AutoConfirmReceiptJob struct {
	repo         ports.OrderRepository
	handler      commands.MarkReceivedCommandHandler
	confirmAfter time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
	now          func() time.Time
}

// NewAutoConfirmReceiptJob creates a job that auto-confirms receipt after
// the given grace period following delivery.
func NewAutoConfirmReceiptJob(
	repo ports.OrderRepository,
	handler commands.MarkReceivedCommandHandler,
	confirmAfter time.Duration,
	logger *slog.Logger,
) *AutoConfirmReceiptJob {
	return &AutoConfirmReceiptJob{
		repo:         repo,
		handler:      handler,
		confirmAfter: confirmAfter,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "auto_confirm_receipt_job"),
		now:          time.Now,
	}
}

// Start begins the job, running at the top of every minute.
func (j *AutoConfirmReceiptJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto confirm receipt job started (running every minute)",
		"confirm_after", j.confirmAfter.String())
	return nil
}

// Stop stops the job.
func (j *AutoConfirmReceiptJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto confirm receipt job stopped")
}

func (j *AutoConfirmReceiptJob) run(ctx context.Context) {
	cutoff := j.now().Add(-j.confirmAfter)

	candidates, err := j.repo.GetAllDeliveredBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list overdue deliveries", "error", err)
		return
	}

	for _, candidate := range candidates {
		cmd, cmdErr := commands.NewMarkReceivedCommand(candidate.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build mark received command",
				"order_id", candidate.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A customer confirming at the same moment wins the row lock;
			// the resulting state conflict is not a failure.
			if errors.Is(handleErr, errs.ErrInvalidState) || errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to auto-confirm receipt",
				"order_id", candidate.ID().String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Receipt auto-confirmed", "order_id", candidate.ID().String())
	}
}
