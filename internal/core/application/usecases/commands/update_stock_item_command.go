package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateStockItemCommandIsNotConstructed = errors.New(
	"UpdateStockItemCommand must be created via NewUpdateStockItemCommand constructor",
)

// UpdateStockItemCommand represents a catalog edit: every descriptive field
// of a stock item is replaced. The quantity field is an administrative
// correction and bypasses the reserve/release ledger.
type UpdateStockItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	productName string
	subCategory string
	description string
	price       float64
	quantity    int
	origin      string
	location    string
	rack        string

	guard guard.ConstructorGuard
}

// NewUpdateStockItemCommand creates a command to replace the catalog entry
// identified by itemID.
func NewUpdateStockItemCommand(
	itemID kernel.UUID,
	productName string,
	subCategory string,
	description string,
	price float64,
	quantity int,
	origin string,
	location string,
	rack string,
) (UpdateStockItemCommand, error) {
	cmd := UpdateStockItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setProductName(productName),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
		cmd.setOrigin(origin),
		cmd.setLocation(location),
		cmd.setRack(rack),
	); err != nil {
		return UpdateStockItemCommand{}, err
	}

	cmd.subCategory = subCategory
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the catalog entry to replace.
func (c UpdateStockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductName returns the new catalog name.
func (c UpdateStockItemCommand) ProductName() string {
	return c.productName
}

// SubCategory returns the new product grouping.
func (c UpdateStockItemCommand) SubCategory() string {
	return c.subCategory
}

// Description returns the new free-text description.
func (c UpdateStockItemCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateStockItemCommand) Price() float64 {
	return c.price
}

// Quantity returns the corrected on-hand quantity.
func (c UpdateStockItemCommand) Quantity() int {
	return c.quantity
}

// Origin returns the new sourcing origin.
func (c UpdateStockItemCommand) Origin() string {
	return c.origin
}

// Location returns the new warehouse location.
func (c UpdateStockItemCommand) Location() string {
	return c.location
}

// Rack returns the new rack placement.
func (c UpdateStockItemCommand) Rack() string {
	return c.rack
}

func (c *UpdateStockItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateStockItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	c.productName = productName
	return nil
}

func (c *UpdateStockItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *UpdateStockItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateStockItemCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	c.origin = origin
	return nil
}

func (c *UpdateStockItemCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *UpdateStockItemCommand) setRack(rack string) error {
	if rack == "" {
		return errs.NewValueIsRequiredError("rack")
	}
	c.rack = rack
	return nil
}
