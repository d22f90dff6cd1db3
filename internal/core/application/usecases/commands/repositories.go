// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// FulfillmentUoW manages transactions for the order lifecycle operations
	// that coordinate orders with the stock ledger and driver availability:
	// place (reserve + create), assign (claim + update), status change
	// (release + update), delete.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if _, err := uow.StockRepository().Reserve(ctx, productID, qty); err != nil {
	//       return err
	//   }
	//   if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
	//       return err
	//   }
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		DriverRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// StockUoW manages transactions for catalog operations on stock items.
	// It also exposes the order repository so deletions can check for active
	// references.
	StockUoW interface {
		TxManager
		StockRepoFactory
		OrderRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// DriverUoW manages transactions for driver registry operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UserUoW manages transactions for user registry operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
