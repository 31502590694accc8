package order

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// DomainEvent is implemented by events raised by the order aggregate.
// Events are delivered to the notification sink after the transaction that
// produced them has committed.
type DomainEvent interface {
	EventName() string
}

// OrderReviewedEvent signals that a review batch was accepted for an order.
// Emitted exactly once per successful review submission, after commit.
type OrderReviewedEvent struct {
	OrderID    kernel.UUID
	UserID     kernel.UUID
	ReviewedAt time.Time
}

// NewOrderReviewedEvent creates the event for a freshly reviewed order.
func NewOrderReviewedEvent(o *Order, reviewedAt time.Time) OrderReviewedEvent {
	return OrderReviewedEvent{
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		ReviewedAt: reviewedAt,
	}
}

// EventName returns the stable event identifier used for routing.
func (OrderReviewedEvent) EventName() string {
	return "order.reviewed"
}
