package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllStockQueryHandler retrieves the stock catalog.
type GetAllStockQueryHandler struct {
	db *gorm.DB
}

// NewGetAllStockQueryHandler creates a handler for stock catalog queries.
func NewGetAllStockQueryHandler(db *gorm.DB) GetAllStockQueryHandler {
	return GetAllStockQueryHandler{db: db}
}

// Handle executes the query, sorted by product name.
func (h GetAllStockQueryHandler) Handle(
	ctx context.Context,
	query GetAllStockQuery,
) ([]StockItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]StockItemResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, product_name, sub_category, description, price, quantity, origin, location, rack
		FROM stock_items
		ORDER BY product_name
	`).Scan(&responses).Error
	if err != nil {
		return nil, err
	}

	return responses, nil
}
