package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// LogisticsReportQueryHandler computes the operations report from the
// database.
type LogisticsReportQueryHandler struct {
	db *gorm.DB
}

// NewLogisticsReportQueryHandler creates a handler for the logistics report.
func NewLogisticsReportQueryHandler(db *gorm.DB) LogisticsReportQueryHandler {
	return LogisticsReportQueryHandler{db: db}
}

// Handle executes the report. A shipment is delayed when it is In Transit or
// Out for Delivery and its expected delivery date has passed. The driver
// leaderboard ranks by delivered count, top three.
func (h LogisticsReportQueryHandler) Handle(
	ctx context.Context,
	query LogisticsReportQuery,
) (LogisticsReportResponse, error) {
	if err := query.Validate(); err != nil {
		return LogisticsReportResponse{}, err
	}

	var resp LogisticsReportResponse
	db := h.db.WithContext(ctx)

	err := db.Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS delivered,
			COUNT(*) FILTER (WHERE status = ?) AS pending,
			COUNT(*) FILTER (WHERE status IN (?, ?) AND expected_delivery_date < ?) AS delayed
		FROM orders
	`,
		order.StatusDelivered.String(),
		order.StatusPending.String(),
		order.StatusInTransit.String(),
		order.StatusOutForDelivery.String(),
		time.Now().UTC(),
	).Scan(&resp.Logistics).Error
	if err != nil {
		return LogisticsReportResponse{}, err
	}

	resp.TopDrivers = make([]DriverPerformance, 0)
	err = db.Raw(`
		SELECT d.name AS driver_name, COUNT(*) AS deliveries
		FROM orders o
		JOIN drivers d ON d.id = o.driver_id
		WHERE o.status = ? AND o.driver_id IS NOT NULL
		GROUP BY d.name
		ORDER BY deliveries DESC
		LIMIT 3
	`, order.StatusDelivered.String()).Scan(&resp.TopDrivers).Error
	if err != nil {
		return LogisticsReportResponse{}, err
	}

	resp.PendingGoods = make([]PendingGood, 0)
	err = db.Raw(`
		SELECT
			o.order_code,
			s.product_name AS item_name,
			s.sub_category,
			o.quantity
		FROM orders o
		JOIN stock_items s ON s.id = o.product_id
		WHERE o.status = ?
		ORDER BY o.placed_at
	`, order.StatusPending.String()).Scan(&resp.PendingGoods).Error
	if err != nil {
		return LogisticsReportResponse{}, err
	}

	return resp, nil
}
