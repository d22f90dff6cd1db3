package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderResponseSelect is the projection shared by the order queries. Every
// order query joins the same three reference tables so the read model stays
// uniform.
const orderResponseSelect = `
	SELECT
		o.order_code,
		o.status,
		o.order_type,
		o.quantity,
		o.product_id,
		COALESCE(s.product_name, '') AS product_name,
		o.user_id,
		COALESCE(u.username, '') AS username,
		o.driver_id,
		COALESCE(d.name, '') AS driver_name,
		o.recipient_name,
		o.recipient_address,
		o.recipient_contact,
		o.expected_delivery_date,
		o.placed_at
	FROM orders o
	LEFT JOIN stock_items s ON s.id = o.product_id
	LEFT JOIN users u ON u.id = o.user_id
	LEFT JOIN drivers d ON d.id = o.driver_id
`

// GetOrderQueryHandler retrieves a single order read model from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// carries the requested code.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var responses []OrderResponse
	err := h.db.WithContext(ctx).
		Raw(orderResponseSelect+` WHERE o.order_code = ?`, query.OrderCode()).
		Scan(&responses).Error
	if err != nil {
		return OrderResponse{}, err
	}

	if len(responses) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderCode", query.OrderCode())
	}

	return responses[0], nil
}
