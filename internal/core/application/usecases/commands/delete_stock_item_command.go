package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteStockItemCommandIsNotConstructed = errors.New(
	"DeleteStockItemCommand must be created via NewDeleteStockItemCommand constructor",
)

// DeleteStockItemCommand represents a request to remove a product from the
// stock catalog. Items still referenced by active orders cannot be removed.
type DeleteStockItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStockItemCommand creates a command to delete the catalog entry
// identified by itemID.
func NewDeleteStockItemCommand(itemID kernel.UUID) (DeleteStockItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteStockItemCommand{}, err
	}

	return DeleteStockItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStockItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStockItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the catalog entry to delete.
func (c DeleteStockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
