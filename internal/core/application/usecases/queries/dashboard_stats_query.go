package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDashboardStatsQueryIsNotConstructed = errors.New(
	"DashboardStatsQuery must be created via NewDashboardStatsQuery constructor",
)

// DashboardStatsQuery computes the landing-page counters and the recent
// activity feed. Everything is derived on demand from the operational
// tables; nothing is persisted.
type DashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewDashboardStatsQuery creates a dashboard statistics query.
func NewDashboardStatsQuery() DashboardStatsQuery {
	return DashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q DashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsResponse carries the headline counters plus a human-readable
// feed of the three most recent orders, users, and stock updates.
type DashboardStatsResponse struct {
	TotalUsers      int64    `json:"total_users"`
	TotalShipments  int64    `json:"total_shipments"`
	TotalDrivers    int64    `json:"total_drivers"`
	TotalWarehouses int64    `json:"total_warehouses"`
	RecentActivity  []string `json:"recent_activity"`
}
