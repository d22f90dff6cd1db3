package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its external order code, with
// the product, owner, and driver names joined in.
//
// Example:
//
//	query, _ := NewGetOrderQuery("ORD-1001")
//	handler := NewGetOrderQueryHandler(db)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("%s is %s\n", order.OrderCode, order.Status)
type GetOrderQuery struct {
	orderCode string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order identified by orderCode.
func NewGetOrderQuery(orderCode string) (GetOrderQuery, error) {
	if orderCode == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderCode")
	}

	return GetOrderQuery{
		orderCode: orderCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderCode returns the requested order code.
func (q GetOrderQuery) OrderCode() string {
	return q.orderCode
}

// OrderResponse is the read model shared by the order queries. Joined names
// degrade to empty strings when the referenced record no longer exists.
type OrderResponse struct {
	OrderCode            string     `json:"order_code"`
	Status               string     `json:"status"`
	OrderType            string     `json:"order_type"`
	Quantity             int        `json:"quantity"`
	ProductID            uuid.UUID  `json:"product_id"`
	ProductName          string     `json:"product_name"`
	UserID               uuid.UUID  `json:"user_id"`
	Username             string     `json:"username"`
	DriverID             *uuid.UUID `json:"driver_id,omitempty"`
	DriverName           string     `json:"driver_name,omitempty"`
	RecipientName        string     `json:"recipient_name"`
	RecipientAddress     string     `json:"recipient_address"`
	RecipientContact     string     `json:"recipient_contact"`
	ExpectedDeliveryDate time.Time  `json:"expected_delivery_date"`
	PlacedAt             time.Time  `json:"placed_at"`
}
