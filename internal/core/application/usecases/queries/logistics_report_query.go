package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrLogisticsReportQueryIsNotConstructed = errors.New(
	"LogisticsReportQuery must be created via NewLogisticsReportQuery constructor",
)

// LogisticsReportQuery computes the operations report: order counts by
// outcome, delayed shipments, the best-performing drivers, and the pending
// goods backlog.
type LogisticsReportQuery struct {
	guard guard.ConstructorGuard
}

// NewLogisticsReportQuery creates a logistics report query.
func NewLogisticsReportQuery() LogisticsReportQuery {
	return LogisticsReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q LogisticsReportQuery) Validate() error {
	return q.guard.Validate(ErrLogisticsReportQueryIsNotConstructed)
}

// LogisticsSummary holds the headline order counts. Delayed counts orders
// still on the road past their expected delivery date.
type LogisticsSummary struct {
	Total     int64 `json:"total"`
	Delivered int64 `json:"delivered"`
	Pending   int64 `json:"pending"`
	Delayed   int64 `json:"delayed"`
}

// DriverPerformance is one row of the delivered-count leaderboard.
type DriverPerformance struct {
	DriverName string `json:"driver_name"`
	Deliveries int64  `json:"deliveries"`
}

// PendingGood is one Pending order joined with its product details.
type PendingGood struct {
	OrderCode   string `json:"order_code"`
	ItemName    string `json:"item_name"`
	SubCategory string `json:"sub_category"`
	Quantity    int    `json:"quantity"`
}

// LogisticsReportResponse is the full operations report.
type LogisticsReportResponse struct {
	Logistics    LogisticsSummary    `json:"logistics"`
	TopDrivers   []DriverPerformance `json:"top_drivers"`
	PendingGoods []PendingGood       `json:"pending_goods"`
}
