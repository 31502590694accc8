package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// ApplyRefundCommandHandler handles refund applications.
// Records the customer's reason and transitions the refund status from
// RefundPending to RefundApplied.
//
// The order is loaded with a row-level lock, so two concurrent applications
// serialize: exactly one passes the guard and the other fails with
// errs.InvalidStateError. Unlike review submission, no event is emitted for
// this action.
type ApplyRefundCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApplyRefundCommandHandler creates a handler for refund applications.
// Requires an OrderUoWFactory for transactional persistence.
func NewApplyRefundCommandHandler(uowFactory OrderUoWFactory) ApplyRefundCommandHandler {
	return ApplyRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund application command and returns the updated
// order snapshot. Fails with errs.InvalidStateError when the order is unpaid
// or a refund was already requested, leaving the order unchanged.
func (h *ApplyRefundCommandHandler) Handle(ctx context.Context, cmd ApplyRefundCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyRefund(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
