package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents an administrative request to remove an order
// record entirely. The assigned driver is freed; reserved stock is not
// restored, cancellation is the operation for that.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderCode string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the order identified by
// orderCode.
func NewDeleteOrderCommand(orderCode string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderCode == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderCode")
	}
	cmd.orderCode = orderCode

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderCode returns the external code of the order to delete.
func (c DeleteOrderCommand) OrderCode() string {
	return c.orderCode
}
