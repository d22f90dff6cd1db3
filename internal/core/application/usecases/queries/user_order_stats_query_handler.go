package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// UserOrderStatsQueryHandler computes per-user shipment statistics.
type UserOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewUserOrderStatsQueryHandler creates a handler for per-user statistics.
func NewUserOrderStatsQueryHandler(db *gorm.DB) UserOrderStatsQueryHandler {
	return UserOrderStatsQueryHandler{db: db}
}

type userOrderTotalsRow struct {
	Total     float64
	Active    float64
	Delivered float64
	Value     float64
}

// Handle executes the statistics query. Lifetime totals ignore time; the
// monthly section compares the calendar month containing now against the
// month before it.
func (h UserOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query UserOrderStatsQuery,
) (UserOrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return UserOrderStatsResponse{}, err
	}

	resp := UserOrderStatsResponse{UserID: query.UserID().Bytes()}

	lifetime, err := h.userTotals(ctx, query, nil)
	if err != nil {
		return UserOrderStatsResponse{}, err
	}
	resp.Totals = UserOrderTotals{
		TotalShipments:     int64(lifetime.Total),
		ActiveShipments:    int64(lifetime.Active),
		DeliveredShipments: int64(lifetime.Delivered),
		TotalValue:         lifetime.Value,
	}

	current, previous := MonthWindows(time.Now().UTC())

	currentTotals, err := h.userTotals(ctx, query, &current)
	if err != nil {
		return UserOrderStatsResponse{}, err
	}
	previousTotals, err := h.userTotals(ctx, query, &previous)
	if err != nil {
		return UserOrderStatsResponse{}, err
	}

	resp.ThisMonth = UserOrderMonth{
		TotalShipments:     newShipmentMetric(currentTotals.Total, previousTotals.Total),
		ActiveShipments:    newShipmentMetric(currentTotals.Active, previousTotals.Active),
		DeliveredShipments: newShipmentMetric(currentTotals.Delivered, previousTotals.Delivered),
		TotalValue:         newShipmentMetric(currentTotals.Value, previousTotals.Value),
	}

	return resp, nil
}

func (h UserOrderStatsQueryHandler) userTotals(
	ctx context.Context,
	query UserOrderStatsQuery,
	window *MonthWindow,
) (userOrderTotalsRow, error) {
	sql := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE o.status NOT IN (?, ?)) AS active,
			COUNT(*) FILTER (WHERE o.status = ?) AS delivered,
			COALESCE(SUM(o.quantity * COALESCE(s.price, 0)), 0) AS value
		FROM orders o
		LEFT JOIN stock_items s ON s.id = o.product_id
		WHERE o.user_id = ?
	`
	args := []any{
		order.StatusDelivered.String(),
		order.StatusCancelled.String(),
		order.StatusDelivered.String(),
		query.UserID().Bytes(),
	}

	if window != nil {
		sql += ` AND o.placed_at >= ? AND o.placed_at < ?`
		args = append(args, window.Start, window.End)
	}

	var totals userOrderTotalsRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&totals).Error; err != nil {
		return userOrderTotalsRow{}, err
	}
	return totals, nil
}
