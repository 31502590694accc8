// Package queries contains read operations for the order lifecycle.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows straight from the database, bypassing the domain
// aggregates and their invariant checks.
package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items.
// Scoped to the requesting customer: an order belonging to someone else
// behaves exactly like a missing order.
type GetOrderQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order owned by the given customer.
func NewGetOrderQuery(orderID kernel.UUID, userID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the identifier of the requesting customer.
func (q GetOrderQuery) UserID() kernel.UUID {
	return q.userID
}

// OrderResponse represents one order row for read-side consumers.
type OrderResponse struct {
	ID           kernel.UUID
	ShipStatus   order.ShipStatus
	RefundStatus order.RefundStatus
	PaidAt       *time.Time
	DeliveredAt  *time.Time
	Reviewed     bool
	RefundReason *string
	Items        []ItemResponse
}

// ItemResponse represents one order line item row, including its review
// fields once the order has been reviewed.
type ItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	SkuID       kernel.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
	Rating      *int
	Review      *string
	ReviewedAt  *time.Time
}
