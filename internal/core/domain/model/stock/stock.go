// Package stock implements the stock item aggregate, the unit of inventory
// the ledger reserves against. The quantity invariant (never negative) is
// enforced both here and by the conditional update in the repository, so a
// stale in-memory read can never push stored quantity below zero.
package stock

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents a warehouse stock item. Product names are case-normalized
// (lowercased, trimmed) and unique across the catalog.
type Item struct {
	id          kernel.UUID
	productName string
	subCategory string
	description string
	price       float64
	quantity    int
	origin      string
	location    string
	rack        string

	isConstructed bool
}

// NewItem creates a validated stock item.
func NewItem(
	id kernel.UUID,
	productName string,
	subCategory string,
	description string,
	price float64,
	quantity int,
	origin string,
	location string,
	rack string,
) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setPrice(price),
		item.setQuantity(quantity),
		item.setOrigin(origin),
		item.setLocation(location),
		item.setRack(rack),
	); err != nil {
		return nil, err
	}

	item.subCategory = strings.TrimSpace(subCategory)
	item.description = strings.TrimSpace(description)

	return item, nil
}

// RestoreItem reconstructs a stock item from persistence.
func RestoreItem(
	id kernel.UUID,
	productName string,
	subCategory string,
	description string,
	price float64,
	quantity int,
	origin string,
	location string,
	rack string,
) (*Item, error) {
	return NewItem(id, productName, subCategory, description, price, quantity, origin, location, rack)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the case-normalized product name.
func (i *Item) ProductName() string {
	return i.productName
}

// SubCategory returns the product subcategory used by category rollups.
func (i *Item) SubCategory() string {
	return i.subCategory
}

// Description returns the free-form product description.
func (i *Item) Description() string {
	return i.description
}

// Price returns the unit price used for order value analytics.
func (i *Item) Price() float64 {
	return i.price
}

// Quantity returns the currently available quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Origin returns the product origin.
func (i *Item) Origin() string {
	return i.origin
}

// Location returns the warehouse location.
func (i *Item) Location() string {
	return i.location
}

// Rack returns the storage rack within the warehouse.
func (i *Item) Rack() string {
	return i.rack
}

// Reserve decrements the available quantity by amount.
// Fails with InsufficientStockError if amount exceeds the available quantity,
// leaving the quantity unchanged.
func (i *Item) Reserve(amount int) error {
	if amount < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	if amount > i.quantity {
		return errs.NewInsufficientStockError(i.id.String(), amount, i.quantity)
	}

	i.quantity -= amount
	return nil
}

// Release returns a previously reserved amount to the available quantity.
// The ledger does not track which order released how much; idempotency is the
// caller's responsibility.
func (i *Item) Release(amount int) error {
	if amount < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", amount))
	}

	i.quantity += amount
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(productName string) error {
	normalized := strings.ToLower(strings.TrimSpace(productName))
	if normalized == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = normalized
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setOrigin(origin string) error {
	if strings.TrimSpace(origin) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	i.origin = strings.TrimSpace(origin)
	return nil
}

func (i *Item) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}
	i.location = strings.TrimSpace(location)
	return nil
}

func (i *Item) setRack(rack string) error {
	if strings.TrimSpace(rack) == "" {
		return errs.NewValueIsRequiredError("rack")
	}
	i.rack = strings.TrimSpace(rack)
	return nil
}
