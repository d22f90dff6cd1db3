package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves fleet registry entries.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for fleet registry queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query, sorted by driver name for stable listings.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]DriverResponse, 0)

	tx := h.db.WithContext(ctx)
	if query.Busy() != nil {
		tx = tx.Raw(`
			SELECT id, name, vehicle_name, vehicle_plate_no, license_no, address, carrier_name, busy
			FROM drivers
			WHERE busy = ?
			ORDER BY name
		`, *query.Busy())
	} else {
		tx = tx.Raw(`
			SELECT id, name, vehicle_name, vehicle_plate_no, license_no, address, carrier_name, busy
			FROM drivers
			ORDER BY name
		`)
	}

	if err := tx.Scan(&responses).Error; err != nil {
		return nil, err
	}

	return responses, nil
}
