package commands

import (
	"context"

	"logistics/internal/core/domain/model/stock"
)

// UpdateStockItemCommandHandler handles catalog edits.
type UpdateStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewUpdateStockItemCommandHandler creates a handler for catalog edits.
func NewUpdateStockItemCommandHandler(uowFactory StockUoWFactory) UpdateStockItemCommandHandler {
	return UpdateStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog edit command.
// The existing entry must be present; the replacement is validated the same
// way a fresh catalog addition is.
func (h *UpdateStockItemCommandHandler) Handle(ctx context.Context, cmd UpdateStockItemCommand) error {
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

	item, err := stock.RestoreItem(
		cmd.ItemID(),
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

	if err = stockRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
