package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates,
// including the availability operations that must be serialized per driver.
type DriverRepository interface {
	// Add persists a new driver. Fails with a DuplicateKeyError if the
	// vehicle plate or license number is already taken.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllFree retrieves drivers whose busy flag is false.
	GetAllFree(ctx context.Context) ([]*driver.Driver, error)

	// Claim atomically transitions a driver from free to busy. A driver
	// claimed by two simultaneous assignment requests never ends up
	// associated with two orders: the flip is a single conditional update.
	// Fails with DriverUnavailableError if the driver is already busy and
	// ObjectNotFoundError if unknown.
	Claim(ctx context.Context, id kernel.UUID) error

	// Release transitions a driver to free. Releasing an already-free
	// driver is a no-op, tolerating retries.
	Release(ctx context.Context, id kernel.UUID) error
}
