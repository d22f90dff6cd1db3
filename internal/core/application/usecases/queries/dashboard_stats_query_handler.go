package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DashboardStatsQueryHandler computes the dashboard counters and activity
// feed from the database.
type DashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewDashboardStatsQueryHandler creates a handler for dashboard statistics.
func NewDashboardStatsQueryHandler(db *gorm.DB) DashboardStatsQueryHandler {
	return DashboardStatsQueryHandler{db: db}
}

// Handle executes the query. Warehouses are counted as distinct stock
// locations; the activity feed interleaves the three most recent orders,
// user registrations, and stock updates.
func (h DashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query DashboardStatsQuery,
) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	var resp DashboardStatsResponse
	db := h.db.WithContext(ctx)

	if err := db.Raw(`SELECT COUNT(*) FROM users`).Scan(&resp.TotalUsers).Error; err != nil {
		return DashboardStatsResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(*) FROM orders`).Scan(&resp.TotalShipments).Error; err != nil {
		return DashboardStatsResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(*) FROM drivers`).Scan(&resp.TotalDrivers).Error; err != nil {
		return DashboardStatsResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(DISTINCT location) FROM stock_items`).
		Scan(&resp.TotalWarehouses).Error; err != nil {
		return DashboardStatsResponse{}, err
	}

	activity, err := h.recentActivity(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	resp.RecentActivity = activity

	return resp, nil
}

func (h DashboardStatsQueryHandler) recentActivity(ctx context.Context) ([]string, error) {
	db := h.db.WithContext(ctx)
	activity := make([]string, 0)

	var recentOrders []struct {
		OrderCode  string
		DriverName *string
	}
	err := db.Raw(`
		SELECT o.order_code, d.name AS driver_name
		FROM orders o
		LEFT JOIN drivers d ON d.id = o.driver_id
		ORDER BY o.placed_at DESC
		LIMIT 3
	`).Scan(&recentOrders).Error
	if err != nil {
		return nil, err
	}
	for _, o := range recentOrders {
		if o.DriverName != nil {
			activity = append(activity,
				fmt.Sprintf("Shipment %s assigned to Driver %s", o.OrderCode, *o.DriverName))
		} else {
			activity = append(activity, fmt.Sprintf("Shipment %s created", o.OrderCode))
		}
	}

	var recentUsers []struct {
		Username string
	}
	err = db.Raw(`SELECT username FROM users ORDER BY created_at DESC LIMIT 3`).
		Scan(&recentUsers).Error
	if err != nil {
		return nil, err
	}
	for _, u := range recentUsers {
		activity = append(activity, fmt.Sprintf("User %s registered", u.Username))
	}

	var recentStock []struct {
		ProductName string
	}
	err = db.Raw(`SELECT product_name FROM stock_items ORDER BY updated_at DESC LIMIT 3`).
		Scan(&recentStock).Error
	if err != nil {
		return nil, err
	}
	for _, s := range recentStock {
		activity = append(activity, fmt.Sprintf("Warehouse stock updated: %s", s.ProductName))
	}

	return activity, nil
}
