package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsTerminal is returned when mutating an order whose status is
	// Delivered or Cancelled.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")
)

// Order is the aggregate root for a customer shipment. It references the
// stock item whose quantity was reserved at placement time, the owning user,
// and optionally the driver carrying it.
//
// Order maintains these invariants:
//   - order code, user reference, and product reference are always set
//   - quantity is at least 1 and equals the quantity reserved against stock
//   - status transitions follow the forward/terminal rule in Status
//   - a driver can only be assigned while the status is not terminal
//
// The driver reference is retained after delivery so that per-driver
// analytics (delivered counts, volume leaderboards) keep attributing
// completed work.
type Order struct {
	id        kernel.UUID
	orderCode string
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int
	address   DeliveryAddress
	orderType Type
	status    Status
	driverID  *kernel.UUID

	expectedDeliveryDate time.Time
	placedAt             time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the given initial status (normally
// StatusPending). All references and values are validated; a terminal
// initial status is rejected because it would bypass the stock and driver
// bookkeeping that happens during the lifecycle.
func NewOrder(
	id kernel.UUID,
	orderCode string,
	userID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	address DeliveryAddress,
	orderType Type,
	initialStatus Status,
	expectedDeliveryDate time.Time,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderCode(orderCode),
		o.setUserID(userID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setAddress(address),
		o.setOrderType(orderType),
		o.setInitialStatus(initialStatus),
		o.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return nil, err
	}

	if placedAt.IsZero() {
		placedAt = time.Now()
	}
	o.placedAt = placedAt

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time rules (a stored order may legitimately be in any recognized
// status, including terminal ones).
func RestoreOrder(
	id kernel.UUID,
	orderCode string,
	userID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	address DeliveryAddress,
	orderType Type,
	status Status,
	driverID *kernel.UUID,
	expectedDeliveryDate time.Time,
	placedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderCode(orderCode),
		o.setUserID(userID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setAddress(address),
		o.setOrderType(orderType),
		o.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.driverID = driverID
	o.placedAt = placedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderCode returns the externally supplied, unique order code.
func (o *Order) OrderCode() string {
	return o.orderCode
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ProductID returns the referenced stock item's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the ordered quantity, equal to the quantity reserved
// against the stock item for the order's lifetime.
func (o *Order) Quantity() int {
	return o.quantity
}

// DeliveryAddress returns the recipient details.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.address
}

// OrderType returns the goods-movement direction.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DriverID returns the assigned driver's ID, or nil if unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// ExpectedDeliveryDate returns the promised delivery date. An active order
// past this date counts as delayed in analytics.
func (o *Order) ExpectedDeliveryDate() time.Time {
	return o.expectedDeliveryDate
}

// PlacedAt returns the placement timestamp used for calendar-month analytics.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// HasDriver reports whether a driver is currently referenced by the order.
func (o *Order) HasDriver() bool {
	return o.driverID != nil
}

// AssignDriver attaches a driver to the order. The caller is responsible for
// claiming the driver's availability (and releasing a previously assigned
// one) within the same unit of work.
//
// Returns ErrOrderIsTerminal if the order is already Delivered or Cancelled.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return fmt.Errorf("%w: cannot assign driver to %s order", ErrOrderIsTerminal, o.status)
	}

	o.driverID = &driverID
	return nil
}

// TransitionTo advances the order to newStatus following the forward/terminal
// rule. The driver reference is kept on terminal transitions; only the
// driver's busy flag is released by the application layer.
func (o *Order) TransitionTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	o.orderCode = orderCode
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setAddress(address DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setInitialStatus(initialStatus Status) error {
	if err := initialStatus.Validate(); err != nil {
		return err
	}
	if initialStatus.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid initial status", initialStatus))
	}
	o.status = initialStatus
	return nil
}

func (o *Order) setExpectedDeliveryDate(expectedDeliveryDate time.Time) error {
	if expectedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}
	o.expectedDeliveryDate = expectedDeliveryDate
	return nil
}
