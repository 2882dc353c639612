package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing and reporting reads go through the query handlers directly; the
// repository serves the command side only.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate (status and
	// driver binding; items are immutable after creation).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while taking a row-level lock inside the
	// current transaction, serializing concurrent status mutations per order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
