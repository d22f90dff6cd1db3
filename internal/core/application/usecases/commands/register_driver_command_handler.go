package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// RegisterDriverCommandHandler handles fleet registry additions.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Returns a DuplicateKeyError when the plate or license number is taken.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newDriver, err := driver.NewDriver(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.VehicleName(),
		cmd.VehiclePlateNo(),
		cmd.LicenseNo(),
		cmd.Address(),
		cmd.CarrierName(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
