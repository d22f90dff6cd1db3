package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stock"
)

// AddStockItemCommandHandler handles catalog additions.
type AddStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAddStockItemCommandHandler creates a handler for catalog additions.
func NewAddStockItemCommandHandler(uowFactory StockUoWFactory) AddStockItemCommandHandler {
	return AddStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition command.
// Returns a DuplicateKeyError when the product name is already taken.
func (h *AddStockItemCommandHandler) Handle(ctx context.Context, cmd AddStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := stock.NewItem(
		kernel.NewUUID(),
		cmd.ProductName(),
		cmd.SubCategory(),
		cmd.Description(),
		cmd.Price(),
		cmd.Quantity(),
		cmd.Origin(),
		cmd.Location(),
		cmd.Rack(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
