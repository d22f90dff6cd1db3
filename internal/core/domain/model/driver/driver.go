// Package driver implements the driver aggregate and its availability flag.
//
// A driver is busy exactly while they hold one order whose status is not
// terminal. Claim and Release govern that flag; the atomicity of a claim
// under concurrent assignment requests is guaranteed by the conditional
// update in the repository, mirroring the in-memory rule enforced here.
package driver

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver represents a delivery driver. Vehicle plate numbers and license
// numbers are unique across the fleet.
type Driver struct {
	id             kernel.UUID
	name           string
	vehicleName    string
	vehiclePlateNo string
	licenseNo      string
	address        string
	carrierName    string
	busy           bool

	isConstructed bool
}

// NewDriver creates a validated driver, initially free.
func NewDriver(
	id kernel.UUID,
	name string,
	vehicleName string,
	vehiclePlateNo string,
	licenseNo string,
	address string,
	carrierName string,
) (*Driver, error) {
	d := &Driver{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setVehicleName(vehicleName),
		d.setVehiclePlateNo(vehiclePlateNo),
		d.setLicenseNo(licenseNo),
		d.setAddress(address),
		d.setCarrierName(carrierName),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence, including the
// busy flag.
func RestoreDriver(
	id kernel.UUID,
	name string,
	vehicleName string,
	vehiclePlateNo string,
	licenseNo string,
	address string,
	carrierName string,
	busy bool,
) (*Driver, error) {
	d, err := NewDriver(id, name, vehicleName, vehiclePlateNo, licenseNo, address, carrierName)
	if err != nil {
		return nil, err
	}

	d.busy = busy
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}

	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// VehicleName returns the vehicle model/name.
func (d *Driver) VehicleName() string {
	return d.vehicleName
}

// VehiclePlateNo returns the unique vehicle plate number.
func (d *Driver) VehiclePlateNo() string {
	return d.vehiclePlateNo
}

// LicenseNo returns the unique license number.
func (d *Driver) LicenseNo() string {
	return d.licenseNo
}

// Address returns the driver's address.
func (d *Driver) Address() string {
	return d.address
}

// CarrierName returns the carrier the driver works for.
func (d *Driver) CarrierName() string {
	return d.carrierName
}

// IsBusy reports whether the driver currently holds an active order.
func (d *Driver) IsBusy() bool {
	return d.busy
}

// Claim transitions the driver from free to busy.
// Fails with DriverUnavailableError if the driver is already busy.
func (d *Driver) Claim() error {
	if d.busy {
		return errs.NewDriverUnavailableError(d.id.String())
	}

	d.busy = true
	return nil
}

// Release transitions the driver to free. Releasing an already-free driver
// is a no-op, tolerating retries.
func (d *Driver) Release() {
	d.busy = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("driverName")
	}
	d.name = strings.TrimSpace(name)
	return nil
}

func (d *Driver) setVehicleName(vehicleName string) error {
	if strings.TrimSpace(vehicleName) == "" {
		return errs.NewValueIsRequiredError("vehicleName")
	}
	d.vehicleName = strings.TrimSpace(vehicleName)
	return nil
}

func (d *Driver) setVehiclePlateNo(vehiclePlateNo string) error {
	if strings.TrimSpace(vehiclePlateNo) == "" {
		return errs.NewValueIsRequiredError("vehiclePlateNo")
	}
	d.vehiclePlateNo = strings.TrimSpace(vehiclePlateNo)
	return nil
}

func (d *Driver) setLicenseNo(licenseNo string) error {
	if strings.TrimSpace(licenseNo) == "" {
		return errs.NewValueIsRequiredError("licenseNo")
	}
	d.licenseNo = strings.TrimSpace(licenseNo)
	return nil
}

func (d *Driver) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = strings.TrimSpace(address)
	return nil
}

func (d *Driver) setCarrierName(carrierName string) error {
	if strings.TrimSpace(carrierName) == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	d.carrierName = strings.TrimSpace(carrierName)
	return nil
}
