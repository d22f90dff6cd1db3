package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves a driver's order history.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order history
// queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query. Delivered orders keep their driver reference,
// so the history covers completed work as well.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0)
	err := h.db.WithContext(ctx).
		Raw(orderResponseSelect+`
		WHERE o.driver_id = ?
		ORDER BY o.placed_at DESC
	`, query.DriverID().Bytes()).
		Scan(&responses).Error
	if err != nil {
		return nil, err
	}

	return responses, nil
}
