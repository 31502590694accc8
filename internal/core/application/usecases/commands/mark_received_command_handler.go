package commands

import (
	"context"
)

// MarkReceivedCommandHandler handles receipt confirmations.
// Transitions the order's ship status from Delivered to Received.
//
// The order is loaded with a row-level lock, so two concurrent confirmations
// serialize: exactly one succeeds and the other fails the lifecycle guard.
type MarkReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkReceivedCommandHandler creates a handler for receipt confirmations.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkReceivedCommandHandler(uowFactory OrderUoWFactory) MarkReceivedCommandHandler {
	return MarkReceivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt confirmation command.
// Fails with errs.InvalidStateError when the order has not been delivered
// yet or receipt was already confirmed, leaving the order unchanged.
func (h *MarkReceivedCommandHandler) Handle(ctx context.Context, cmd MarkReceivedCommand) error {
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

	if err = aggregate.MarkReceived(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
