package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrStockItemInUse is returned when deleting a stock item that active
// orders still hold reservations against.
var ErrStockItemInUse = errors.New("stock item is referenced by active orders")

// DeleteStockItemCommandHandler handles catalog deletions. Deletion is
// blocked while any non-terminal order references the item, otherwise those
// orders would lose the product they reserved.
type DeleteStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewDeleteStockItemCommandHandler creates a handler for catalog deletions.
func NewDeleteStockItemCommandHandler(uowFactory StockUoWFactory) DeleteStockItemCommandHandler {
	return DeleteStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog deletion command.
// The active-order check and the delete run in one transaction so an order
// placed concurrently cannot slip between them.
func (h *DeleteStockItemCommandHandler) Handle(ctx context.Context, cmd DeleteStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	if _, err := stockRepo.Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	active, err := uow.OrderRepository().CountActiveByProduct(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: %d active orders", ErrStockItemInUse, active)
	}

	if err = stockRepo.Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
