package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to put a specific driver on an
// order. Assigning over an existing driver swaps them: the new driver is
// claimed and the previous one freed in the same transaction.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to the order
// identified by orderCode.
func NewAssignDriverCommand(orderCode string, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderCode returns the external code of the order to assign.
func (c AssignDriverCommand) OrderCode() string {
	return c.orderCode
}

// DriverID returns the driver to claim.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	c.orderCode = orderCode
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
