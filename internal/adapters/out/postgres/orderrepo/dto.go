// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and order type are stored as their wire strings so the analytics
// queries can filter on them directly.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderCode            string     `gorm:"uniqueIndex"`
	UserID               uuid.UUID  `gorm:"type:uuid;index"`
	ProductID            uuid.UUID  `gorm:"type:uuid;index"`
	Quantity             int
	RecipientName        string
	RecipientAddress     string
	RecipientContact     string
	OrderType            string     `gorm:"type:text"`
	Status               string     `gorm:"type:text;index"`
	DriverID             *uuid.UUID `gorm:"type:uuid;index"`
	ExpectedDeliveryDate time.Time
	PlacedAt             time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	address := aggregate.DeliveryAddress()
	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderCode:            aggregate.OrderCode(),
		UserID:               aggregate.UserID().Bytes(),
		ProductID:            aggregate.ProductID().Bytes(),
		Quantity:             aggregate.Quantity(),
		RecipientName:        address.Name(),
		RecipientAddress:     address.Address(),
		RecipientContact:     address.Contact(),
		OrderType:            aggregate.OrderType().String(),
		Status:               aggregate.Status().String(),
		DriverID:             driverID,
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		PlacedAt:             aggregate.PlacedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver reference using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	address, err := order.NewDeliveryAddress(dto.RecipientName, dto.RecipientAddress, dto.RecipientContact)
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderCode,
		userID,
		productID,
		dto.Quantity,
		address,
		orderType,
		status,
		driverID,
		dto.ExpectedDeliveryDate,
		dto.PlacedAt,
	)
}
