package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// EventPublisher delivers domain events to the notification sink.
//
// Delivery is fire-and-forget from the core's perspective: handlers publish
// after their transaction commits, log failures, and never retry or fail the
// operation over them. Delivery guarantees belong to the sink.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent) error
}
