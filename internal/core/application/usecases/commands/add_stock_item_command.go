package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAddStockItemCommandIsNotConstructed = errors.New(
	"AddStockItemCommand must be created via NewAddStockItemCommand constructor",
)

// AddStockItemCommand represents a request to add a product to the stock
// catalog with its warehouse placement and an opening quantity.
type AddStockItemCommand struct { //nolint:recvcheck //using for validation
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

// NewAddStockItemCommand creates a command to add a stock item. The product
// name must be unique in the catalog; duplicates are rejected at persistence
// time.
func NewAddStockItemCommand(
	productName string,
	subCategory string,
	description string,
	price float64,
	quantity int,
	origin string,
	location string,
	rack string,
) (AddStockItemCommand, error) {
	cmd := AddStockItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductName(productName),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
		cmd.setOrigin(origin),
		cmd.setLocation(location),
		cmd.setRack(rack),
	); err != nil {
		return AddStockItemCommand{}, err
	}

	cmd.subCategory = subCategory
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockItemCommand) Validate() error {
	return c.guard.Validate(ErrAddStockItemCommandIsNotConstructed)
}

// ProductName returns the catalog name of the product.
func (c AddStockItemCommand) ProductName() string {
	return c.productName
}

// SubCategory returns the optional product grouping.
func (c AddStockItemCommand) SubCategory() string {
	return c.subCategory
}

// Description returns the optional free-text description.
func (c AddStockItemCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c AddStockItemCommand) Price() float64 {
	return c.price
}

// Quantity returns the opening on-hand quantity.
func (c AddStockItemCommand) Quantity() int {
	return c.quantity
}

// Origin returns the sourcing origin.
func (c AddStockItemCommand) Origin() string {
	return c.origin
}

// Location returns the warehouse location.
func (c AddStockItemCommand) Location() string {
	return c.location
}

// Rack returns the rack placement within the warehouse.
func (c AddStockItemCommand) Rack() string {
	return c.rack
}

func (c *AddStockItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	c.productName = productName
	return nil
}

func (c *AddStockItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *AddStockItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *AddStockItemCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	c.origin = origin
	return nil
}

func (c *AddStockItemCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *AddStockItemCommand) setRack(rack string) error {
	if rack == "" {
		return errs.NewValueIsRequiredError("rack")
	}
	c.rack = rack
	return nil
}
