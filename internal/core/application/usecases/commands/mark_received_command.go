package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrMarkReceivedCommandIsNotConstructed = errors.New(
	"MarkReceivedCommand must be created via NewMarkReceivedCommand constructor",
)

// MarkReceivedCommand represents a customer's confirmation that a delivered
// order has been received.
type MarkReceivedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReceivedCommand creates a command to confirm receipt of an order.
// Validates that the order ID is valid.
func NewMarkReceivedCommand(orderID kernel.UUID) (MarkReceivedCommand, error) {
	cmd := MarkReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkReceivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkReceivedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c MarkReceivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkReceivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
