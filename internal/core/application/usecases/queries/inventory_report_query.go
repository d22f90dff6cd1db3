package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var ErrInventoryReportQueryIsNotConstructed = errors.New(
	"InventoryReportQuery must be created via NewInventoryReportQuery constructor",
)

// LowStockThreshold is the quantity below which a stock item counts as
// running low.
const LowStockThreshold = 50

// InventoryReportQuery computes the warehouse view: monthly inbound/outbound
// flow, quantities by product category, low-stock and active-order counters,
// and the last five order movements.
type InventoryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewInventoryReportQuery creates an inventory report query.
func NewInventoryReportQuery() InventoryReportQuery {
	return InventoryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q InventoryReportQuery) Validate() error {
	return q.guard.Validate(ErrInventoryReportQueryIsNotConstructed)
}

// MonthlyInventoryFlow is one calendar month bucket of goods movement.
// Orders from every year fold into the same twelve buckets.
type MonthlyInventoryFlow struct {
	Month    string `json:"month"`
	Incoming int    `json:"incoming"`
	Outgoing int    `json:"outgoing"`
}

// CategoryQuantity is the ordered quantity attributed to one product
// sub-category.
type CategoryQuantity struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OrderActivity is one entry of the recent movement feed.
type OrderActivity struct {
	OrderCode string    `json:"order_code"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// InventoryReportResponse is the warehouse report read model.
type InventoryReportResponse struct {
	MonthlyInventory []MonthlyInventoryFlow `json:"monthly_inventory"`
	CategoryData     []CategoryQuantity     `json:"category_data"`
	RecentActivity   []OrderActivity        `json:"recent_activity"`
	TotalItems       int64                  `json:"total_items"`
	LowStockItems    int64                  `json:"low_stock_items"`
	ActiveOrders     int64                  `json:"active_orders"`
}
