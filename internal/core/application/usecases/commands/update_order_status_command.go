package commands

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to advance an order to a new
// lifecycle status. Transitions only move forward; Delivered and Cancelled
// are terminal.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move the order identified
// by orderCode into newStatus.
func NewUpdateOrderStatusCommand(
	orderCode string,
	newStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderCode returns the external code of the order to update.
func (c UpdateOrderStatusCommand) OrderCode() string {
	return c.orderCode
}

// NewStatus returns the status the order should move to.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	c.orderCode = orderCode
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
