// Package ports defines repository, unit-of-work, and publisher interfaces
// for the logistics domain. These interfaces establish contracts between the
// core and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. Fails with a DuplicateKeyError if
	// the order code is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByCode retrieves an order by its external order code.
	GetByCode(ctx context.Context, orderCode string) (*order.Order, error)

	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllUnassigned retrieves orders with no driver reference.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllByDriver retrieves orders referencing the given driver,
	// regardless of status.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// CountActiveByProduct counts orders in a non-terminal status that
	// reference the given stock item. Used to guard catalog deletions.
	CountActiveByProduct(ctx context.Context, productID kernel.UUID) (int64, error)

	// Delete removes an order permanently. Administrative override, not a
	// normal-path operation.
	Delete(ctx context.Context, id kernel.UUID) error
}
