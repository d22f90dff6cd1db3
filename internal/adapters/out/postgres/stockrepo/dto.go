// Package stockrepo provides data transfer objects and mapping functions for
// stock item persistence, including the conditional quantity updates that
// back the reservation ledger.
package stockrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockItemDTO represents the database structure for persisting stock items.
// UpdatedAt is maintained by GORM on every write, including the conditional
// quantity updates, so the activity feed can order items by freshness.
type StockItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName string    `gorm:"uniqueIndex"`
	SubCategory string
	Description string
	Price       float64
	Quantity    int
	Origin      string
	Location    string `gorm:"index"`
	Rack        string
	UpdatedAt   time.Time
}

// TableName specifies the database table name for stock items.
func (StockItemDTO) TableName() string {
	return "stock_items"
}

// fromDomain converts a stock item to its database representation.
func fromDomain(item *stock.Item) StockItemDTO {
	return StockItemDTO{
		ID:          item.ID().Bytes(),
		ProductName: item.ProductName(),
		SubCategory: item.SubCategory(),
		Description: item.Description(),
		Price:       item.Price(),
		Quantity:    item.Quantity(),
		Origin:      item.Origin(),
		Location:    item.Location(),
		Rack:        item.Rack(),
	}
}

// toDomain converts a database DTO to a stock item.
func toDomain(dto StockItemDTO) (*stock.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreItem(
		id,
		dto.ProductName,
		dto.SubCategory,
		dto.Description,
		dto.Price,
		dto.Quantity,
		dto.Origin,
		dto.Location,
		dto.Rack,
	)
}
