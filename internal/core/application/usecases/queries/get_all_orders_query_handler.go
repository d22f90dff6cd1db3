package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order list from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest placement first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0)
	err := h.db.WithContext(ctx).
		Raw(orderResponseSelect + ` ORDER BY o.placed_at DESC`).
		Scan(&responses).Error
	if err != nil {
		return nil, err
	}

	return responses, nil
}
