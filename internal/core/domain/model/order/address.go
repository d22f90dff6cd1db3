package order

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned when a DeliveryAddress was
// not created through NewDeliveryAddress.
var ErrDeliveryAddressIsNotConstructed = errors.New(
	"DeliveryAddress must be created via NewDeliveryAddress constructor")

// DeliveryAddress is a value object holding the recipient details of an
// order: contact name, street address, and phone/contact string. All three
// fields are required.
type DeliveryAddress struct {
	name    string
	address string
	contact string

	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a validated delivery address.
// Returns ValueIsRequiredError for any empty field.
func NewDeliveryAddress(name, address, contact string) (DeliveryAddress, error) {
	if name == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("deliveryAddress.name")
	}
	if address == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("deliveryAddress.address")
	}
	if contact == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("deliveryAddress.contact")
	}

	return DeliveryAddress{
		name:    name,
		address: address,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Name returns the recipient name.
func (a DeliveryAddress) Name() string {
	return a.name
}

// Address returns the street address.
func (a DeliveryAddress) Address() string {
	return a.address
}

// Contact returns the recipient contact string.
func (a DeliveryAddress) Contact() string {
	return a.contact
}

// IsEqual compares two addresses field by field.
func (a DeliveryAddress) IsEqual(other DeliveryAddress) bool {
	return a.name == other.name && a.address == other.address && a.contact == other.contact
}
