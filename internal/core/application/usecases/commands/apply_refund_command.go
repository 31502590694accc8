package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrApplyRefundCommandIsNotConstructed = errors.New(
	"ApplyRefundCommand must be created via NewApplyRefundCommand constructor",
)

// ApplyRefundCommand represents a customer's refund application with a
// free-text reason.
type ApplyRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewApplyRefundCommand creates a command to apply for a refund.
// Validates that the order ID is valid and the reason is non-empty.
func NewApplyRefundCommand(orderID kernel.UUID, reason string) (ApplyRefundCommand, error) {
	cmd := ApplyRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return ApplyRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyRefundCommand) Validate() error {
	return c.guard.Validate(ErrApplyRefundCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the refund targets.
func (c ApplyRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer-supplied refund reason.
func (c ApplyRefundCommand) Reason() string {
	return c.reason
}

func (c *ApplyRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyRefundCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
