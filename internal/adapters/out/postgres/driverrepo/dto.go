// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence, including the conditional busy-flag updates that back
// driver availability.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	VehicleName    string
	VehiclePlateNo string `gorm:"uniqueIndex"`
	LicenseNo      string `gorm:"uniqueIndex"`
	Address        string
	CarrierName    string
	Busy           bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		VehicleName:    aggregate.VehicleName(),
		VehiclePlateNo: aggregate.VehiclePlateNo(),
		LicenseNo:      aggregate.LicenseNo(),
		Address:        aggregate.Address(),
		CarrierName:    aggregate.CarrierName(),
		Busy:           aggregate.IsBusy(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.VehicleName,
		dto.VehiclePlateNo,
		dto.LicenseNo,
		dto.Address,
		dto.CarrierName,
		dto.Busy,
	)
}
