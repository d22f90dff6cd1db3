package queries

import (
	"errors"

	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrTopDriversQueryIsNotConstructed = errors.New(
	"TopDriversQuery must be created via NewTopDriversQuery constructor",
)

// TopDriversQuery ranks drivers by the number of orders ever assigned to
// them, delivered orders included, and returns the top five with their
// registry details.
type TopDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewTopDriversQuery creates a driver leaderboard query.
func NewTopDriversQuery() TopDriversQuery {
	return TopDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q TopDriversQuery) Validate() error {
	return q.guard.Validate(ErrTopDriversQueryIsNotConstructed)
}

// TopDriverResponse is one leaderboard row.
type TopDriverResponse struct {
	DriverID       uuid.UUID `json:"driver_id"`
	DriverName     string    `json:"driver_name"`
	VehicleName    string    `json:"vehicle_name"`
	VehiclePlateNo string    `json:"vehicle_plate_no"`
	LicenseNo      string    `json:"license_no"`
	TotalOrders    int64     `json:"total_orders"`
}
