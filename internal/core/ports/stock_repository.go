package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for stock items, including
// the ledger operations that must be serialized per product.
type StockRepository interface {
	// Add persists a new stock item. Fails with a DuplicateKeyError if the
	// product name is already taken.
	Add(ctx context.Context, item *stock.Item) error

	// Update persists changes to an existing stock item (catalog edit).
	Update(ctx context.Context, item *stock.Item) error

	// Get retrieves a stock item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.Item, error)

	// GetAll retrieves every stock item.
	GetAll(ctx context.Context) ([]*stock.Item, error)

	// Reserve atomically decrements the item's quantity by amount and
	// returns the remaining quantity. Two concurrent reservations that
	// together exceed the available quantity never both succeed: the
	// decrement is a single conditional update, not a read-modify-write.
	// Fails with InsufficientStockError when amount exceeds the available
	// quantity and ObjectNotFoundError when the item is unknown.
	Reserve(ctx context.Context, id kernel.UUID, amount int) (remaining int, err error)

	// Release increments the item's quantity by amount, restoring a
	// previous reservation. The ledger does not track which order released
	// how much; idempotency is the caller's responsibility.
	Release(ctx context.Context, id kernel.UUID, amount int) error

	// Delete removes a stock item from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error
}
