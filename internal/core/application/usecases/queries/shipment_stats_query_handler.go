package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ShipmentStatsQueryHandler computes shipment analytics from the database.
type ShipmentStatsQueryHandler struct {
	db *gorm.DB
}

// NewShipmentStatsQueryHandler creates a handler for shipment analytics.
func NewShipmentStatsQueryHandler(db *gorm.DB) ShipmentStatsQueryHandler {
	return ShipmentStatsQueryHandler{db: db}
}

// monthlyShipmentTotals aggregates one calendar month of orders. Value sums
// quantity times price over orders whose product still resolves.
type monthlyShipmentTotals struct {
	Total     float64
	Active    float64
	Delivered float64
	Value     float64
}

// Handle executes the analytics query. Active means on the road, In Transit
// or Out for Delivery. Month windows are calendar months in UTC.
func (h ShipmentStatsQueryHandler) Handle(
	ctx context.Context,
	query ShipmentStatsQuery,
) (ShipmentStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentStatsResponse{}, err
	}

	var resp ShipmentStatsResponse
	db := h.db.WithContext(ctx)

	if err := db.Raw(`SELECT COUNT(*) FROM orders`).Scan(&resp.TotalOrders).Error; err != nil {
		return ShipmentStatsResponse{}, err
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	err := db.Raw(`SELECT status, COUNT(*) AS count FROM orders GROUP BY status`).
		Scan(&statusRows).Error
	if err != nil {
		return ShipmentStatsResponse{}, err
	}
	resp.StatusCounts = make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		resp.StatusCounts[row.Status] = row.Count
	}

	current, previous := MonthWindows(time.Now().UTC())

	currentTotals, err := h.monthTotals(ctx, current)
	if err != nil {
		return ShipmentStatsResponse{}, err
	}
	previousTotals, err := h.monthTotals(ctx, previous)
	if err != nil {
		return ShipmentStatsResponse{}, err
	}

	resp.TotalShipments = newShipmentMetric(currentTotals.Total, previousTotals.Total)
	resp.ActiveShipments = newShipmentMetric(currentTotals.Active, previousTotals.Active)
	resp.DeliveredShipments = newShipmentMetric(currentTotals.Delivered, previousTotals.Delivered)
	resp.TotalValue = newShipmentMetric(currentTotals.Value, previousTotals.Value)

	return resp, nil
}

func (h ShipmentStatsQueryHandler) monthTotals(
	ctx context.Context,
	window MonthWindow,
) (monthlyShipmentTotals, error) {
	var totals monthlyShipmentTotals
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE o.status IN (?, ?)) AS active,
			COUNT(*) FILTER (WHERE o.status = ?) AS delivered,
			COALESCE(SUM(o.quantity * COALESCE(s.price, 0)), 0) AS value
		FROM orders o
		LEFT JOIN stock_items s ON s.id = o.product_id
		WHERE o.placed_at >= ? AND o.placed_at < ?
	`,
		order.StatusInTransit.String(),
		order.StatusOutForDelivery.String(),
		order.StatusDelivered.String(),
		window.Start,
		window.End,
	).Scan(&totals).Error
	if err != nil {
		return monthlyShipmentTotals{}, err
	}
	return totals, nil
}

func newShipmentMetric(current, previous float64) ShipmentMetric {
	return ShipmentMetric{
		Current:       current,
		Previous:      previous,
		ChangePercent: PercentChange(current, previous),
	}
}
