package queries

import (
	"context"

	"gorm.io/gorm"
)

// TopDriversQueryHandler computes the driver volume leaderboard.
type TopDriversQueryHandler struct {
	db *gorm.DB
}

// NewTopDriversQueryHandler creates a handler for the driver leaderboard.
func NewTopDriversQueryHandler(db *gorm.DB) TopDriversQueryHandler {
	return TopDriversQueryHandler{db: db}
}

// Handle executes the query: orders grouped by assigned driver, counted,
// descending, limit five.
func (h TopDriversQueryHandler) Handle(
	ctx context.Context,
	query TopDriversQuery,
) ([]TopDriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]TopDriverResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id AS driver_id,
			d.name AS driver_name,
			d.vehicle_name,
			d.vehicle_plate_no,
			d.license_no,
			COUNT(*) AS total_orders
		FROM orders o
		JOIN drivers d ON d.id = o.driver_id
		WHERE o.driver_id IS NOT NULL
		GROUP BY d.id, d.name, d.vehicle_name, d.vehicle_plate_no, d.license_no
		ORDER BY total_orders DESC
		LIMIT 5
	`).Scan(&responses).Error
	if err != nil {
		return nil, err
	}

	return responses, nil
}
