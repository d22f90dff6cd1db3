package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new order: reserve stock
// for the requested quantity and create the order record atomically.
//
// Example:
//
//	addr, _ := order.NewDeliveryAddress("Priya Sharma", "14 Market Road", "+91-900000001")
//	cmd, err := NewPlaceOrderCommand(
//	    "ORD-1001", userID, productID, 4, addr,
//	    order.TypeOutbound, order.StatusPending, expectedDate, nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderCode            string
	userID               kernel.UUID
	productID            kernel.UUID
	quantity             int
	address              order.DeliveryAddress
	orderType            order.Type
	initialStatus        order.Status
	expectedDeliveryDate time.Time
	driverID             *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// initialStatus may be order.StatusUnknown, in which case it defaults to
// Pending; terminal initial statuses are rejected when the order is built.
// driverID is optional.
func NewPlaceOrderCommand(
	orderCode string,
	userID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	address order.DeliveryAddress,
	orderType order.Type,
	initialStatus order.Status,
	expectedDeliveryDate time.Time,
	driverID *kernel.UUID,
) (PlaceOrderCommand, error) {
	if initialStatus == order.StatusUnknown {
		initialStatus = order.StatusPending
	}

	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setAddress(address),
		cmd.setOrderType(orderType),
		cmd.setInitialStatus(initialStatus),
		cmd.setExpectedDeliveryDate(expectedDeliveryDate),
		cmd.setDriverID(driverID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderCode returns the externally supplied unique order code.
func (c PlaceOrderCommand) OrderCode() string {
	return c.orderCode
}

// UserID returns the owning user's identifier.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the stock item to reserve against.
func (c PlaceOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the quantity to reserve.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// DeliveryAddress returns the recipient details.
func (c PlaceOrderCommand) DeliveryAddress() order.DeliveryAddress {
	return c.address
}

// OrderType returns the goods-movement direction.
func (c PlaceOrderCommand) OrderType() order.Type {
	return c.orderType
}

// InitialStatus returns the status the order starts in (Pending by default).
func (c PlaceOrderCommand) InitialStatus() order.Status {
	return c.initialStatus
}

// ExpectedDeliveryDate returns the promised delivery date.
func (c PlaceOrderCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

// DriverID returns the driver to claim at placement, or nil.
func (c PlaceOrderCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *PlaceOrderCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	c.orderCode = orderCode
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setAddress(address order.DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *PlaceOrderCommand) setInitialStatus(initialStatus order.Status) error {
	if err := initialStatus.Validate(); err != nil {
		return err
	}
	c.initialStatus = initialStatus
	return nil
}

func (c *PlaceOrderCommand) setExpectedDeliveryDate(expectedDeliveryDate time.Time) error {
	if expectedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}
	c.expectedDeliveryDate = expectedDeliveryDate
	return nil
}

func (c *PlaceOrderCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	c.driverID = driverID
	return nil
}
