package commands

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// SubmitReviewCommandHandler handles review batch submissions.
//
// All item updates and the order's reviewed flag are persisted in a single
// transaction: a batch that fails on any entry leaves no partial review
// state behind. After a successful commit the handler publishes an
// OrderReviewedEvent to the notification sink, exactly once per successful
// call; publishing failures are logged and never surfaced to the caller.
type SubmitReviewCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewSubmitReviewCommandHandler creates a handler for review submissions.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit notification.
func NewSubmitReviewCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "submit_review_command_handler"),
		now:        time.Now,
	}
}

// Handle processes the review submission command.
//
// Fails with errs.InvalidStateError when the order is unpaid or already
// reviewed, and with errs.ObjectNotFoundError when an entry references an
// item the order does not own. Any failure rolls back all writes.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	reviewedAt := h.now()
	if err = aggregate.SubmitReview(cmd.Reviews(), reviewedAt); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Published only after commit so observers never see uncommitted state.
	event := order.NewOrderReviewedEvent(aggregate, reviewedAt)
	if err = h.publisher.Publish(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order reviewed event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
