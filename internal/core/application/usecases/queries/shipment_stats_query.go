package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrShipmentStatsQueryIsNotConstructed = errors.New(
	"ShipmentStatsQuery must be created via NewShipmentStatsQuery constructor",
)

// ShipmentStatsQuery computes shipment volume analytics: counts by status
// and month-over-month movement for totals, active shipments, deliveries,
// and monetary value.
type ShipmentStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewShipmentStatsQuery creates a shipment statistics query.
func NewShipmentStatsQuery() ShipmentStatsQuery {
	return ShipmentStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ShipmentStatsQuery) Validate() error {
	return q.guard.Validate(ErrShipmentStatsQueryIsNotConstructed)
}

// ShipmentMetric compares the current calendar month against the previous
// one. ChangePercent follows the PercentChange convention.
type ShipmentMetric struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	ChangePercent float64 `json:"change_percent"`
}

// ShipmentStatsResponse is the shipment analytics read model.
type ShipmentStatsResponse struct {
	TotalOrders  int64            `json:"total_orders"`
	StatusCounts map[string]int64 `json:"status_counts"`

	TotalShipments     ShipmentMetric `json:"total_shipments"`
	ActiveShipments    ShipmentMetric `json:"active_shipments"`
	DeliveredShipments ShipmentMetric `json:"delivered_shipments"`
	TotalValue         ShipmentMetric `json:"total_value"`
}
