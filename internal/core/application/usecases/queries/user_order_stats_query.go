package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUserOrderStatsQueryIsNotConstructed = errors.New(
	"UserOrderStatsQuery must be created via NewUserOrderStatsQuery constructor",
)

// UserOrderStatsQuery computes one user's shipment history: lifetime totals
// plus the current month compared against the previous one.
type UserOrderStatsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUserOrderStatsQuery creates a per-user statistics query.
func NewUserOrderStatsQuery(userID kernel.UUID) (UserOrderStatsQuery, error) {
	if err := userID.Validate(); err != nil {
		return UserOrderStatsQuery{}, err
	}

	return UserOrderStatsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q UserOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrUserOrderStatsQueryIsNotConstructed)
}

// UserID returns the user whose statistics are requested.
func (q UserOrderStatsQuery) UserID() kernel.UUID {
	return q.userID
}

// UserOrderTotals holds one user's lifetime shipment counters. Active spans
// every non-terminal status; value sums quantity times price over orders
// whose product still resolves.
type UserOrderTotals struct {
	TotalShipments     int64   `json:"total_shipments"`
	ActiveShipments    int64   `json:"active_shipments"`
	DeliveredShipments int64   `json:"delivered_shipments"`
	TotalValue         float64 `json:"total_value"`
}

// UserOrderMonth compares the user's current calendar month with the
// previous one.
type UserOrderMonth struct {
	TotalShipments     ShipmentMetric `json:"total_shipments"`
	ActiveShipments    ShipmentMetric `json:"active_shipments"`
	DeliveredShipments ShipmentMetric `json:"delivered_shipments"`
	TotalValue         ShipmentMetric `json:"total_value"`
}

// UserOrderStatsResponse is the per-user statistics read model.
type UserOrderStatsResponse struct {
	UserID    uuid.UUID       `json:"user_id"`
	Totals    UserOrderTotals `json:"totals"`
	ThisMonth UserOrderMonth  `json:"this_month"`
}
