package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to add a driver to the fleet
// registry. New drivers start free.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	name           string
	vehicleName    string
	vehiclePlateNo string
	licenseNo      string
	address        string
	carrierName    string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver. The
// vehicle plate and license numbers must be unique in the registry.
func NewRegisterDriverCommand(
	name string,
	vehicleName string,
	vehiclePlateNo string,
	licenseNo string,
	address string,
	carrierName string,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setVehicleName(vehicleName),
		cmd.setVehiclePlateNo(vehiclePlateNo),
		cmd.setLicenseNo(licenseNo),
		cmd.setAddress(address),
		cmd.setCarrierName(carrierName),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// Name returns the driver's name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// VehicleName returns the vehicle model.
func (c RegisterDriverCommand) VehicleName() string {
	return c.vehicleName
}

// VehiclePlateNo returns the unique vehicle plate number.
func (c RegisterDriverCommand) VehiclePlateNo() string {
	return c.vehiclePlateNo
}

// LicenseNo returns the unique driving license number.
func (c RegisterDriverCommand) LicenseNo() string {
	return c.licenseNo
}

// Address returns the driver's address.
func (c RegisterDriverCommand) Address() string {
	return c.address
}

// CarrierName returns the carrier company the driver works for.
func (c RegisterDriverCommand) CarrierName() string {
	return c.carrierName
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setVehicleName(vehicleName string) error {
	if vehicleName == "" {
		return errs.NewValueIsRequiredError("vehicleName")
	}
	c.vehicleName = vehicleName
	return nil
}

func (c *RegisterDriverCommand) setVehiclePlateNo(vehiclePlateNo string) error {
	if vehiclePlateNo == "" {
		return errs.NewValueIsRequiredError("vehiclePlateNo")
	}
	c.vehiclePlateNo = vehiclePlateNo
	return nil
}

func (c *RegisterDriverCommand) setLicenseNo(licenseNo string) error {
	if licenseNo == "" {
		return errs.NewValueIsRequiredError("licenseNo")
	}
	c.licenseNo = licenseNo
	return nil
}

func (c *RegisterDriverCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *RegisterDriverCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	c.carrierName = carrierName
	return nil
}
