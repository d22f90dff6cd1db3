// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes atomically.
//
// Key Features:
//   - Transaction management across the order, stock, driver, and user repositories
//   - Aggregate tracking for post-commit event processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern bound to the active transaction
//
// Usage Pattern:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if _, err := uow.StockRepository().Reserve(ctx, productID, quantity); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - The stock and driver repositories rely on conditional row updates,
//     not transaction-level locking, for their race-free guarantees
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/stockrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances; transactions are per instance.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions across the logistics
// repositories. Repositories obtained from an instance execute within its
// current transaction when one is active, so a stock reservation and the
// order that consumed it commit or roll back together.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling event publishing after successful commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence within the unit of
// work. Operations execute within the current transaction if one is active,
// otherwise against the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.connection(), uow)
}

// StockRepository provides access to the stock catalog and reservation
// ledger within the unit of work.
func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return stockrepo.NewGormStockRepository(uow.connection(), uow)
}

// DriverRepository provides access to the driver registry and availability
// flags within the unit of work.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.connection(), uow)
}

// UserRepository provides access to the user registry within the unit of work.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.connection(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it when aggregates are added or
// updated; the tracked aggregates can drive post-commit event processing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) connection() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
