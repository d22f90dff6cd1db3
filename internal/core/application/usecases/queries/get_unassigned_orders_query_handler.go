package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves active driverless orders.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for the unassigned
// order queue.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query. Terminal orders never need a driver, so only
// active statuses appear, oldest placement first so the longest-waiting
// order is assigned next.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0)
	err := h.db.WithContext(ctx).
		Raw(orderResponseSelect+`
		WHERE o.driver_id IS NULL AND o.status NOT IN (?, ?)
		ORDER BY o.placed_at
	`, order.StatusDelivered.String(), order.StatusCancelled.String()).
		Scan(&responses).Error
	if err != nil {
		return nil, err
	}

	return responses, nil
}
