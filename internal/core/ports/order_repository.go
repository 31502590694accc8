// Package ports defines the contracts between the order core and
// infrastructure: persistence, transaction management, and event delivery.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every returned aggregate is complete: the order row plus all of its line
// items, eagerly loaded.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// changed line items, within the current transaction if one is active.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its unique identifier
	// while holding a row-level lock for the duration of the surrounding
	// transaction. Command handlers use this so that two concurrent
	// transitions on the same order serialize and exactly one passes the
	// lifecycle guard.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllDeliveredBefore retrieves orders still in Delivered status whose
	// delivery confirmation is older than the cutoff. Used by the
	// auto-confirmation job.
	GetAllDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
