package queries

import (
	"errors"

	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves the fleet registry, optionally filtered by the
// busy flag.
//
// Example:
//
//	free := false
//	query := NewGetDriversQuery(&free)
//	drivers, err := NewGetDriversQueryHandler(db).Handle(ctx, query)
type GetDriversQuery struct {
	busy *bool

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query for drivers. Pass nil to list the whole
// fleet, or a pointer to filter on availability.
func NewGetDriversQuery(busy *bool) GetDriversQuery {
	return GetDriversQuery{
		busy:  busy,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// Busy returns the availability filter, or nil for no filter.
func (q GetDriversQuery) Busy() *bool {
	return q.busy
}

// DriverResponse represents one fleet registry entry.
type DriverResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	VehicleName    string    `json:"vehicle_name"`
	VehiclePlateNo string    `json:"vehicle_plate_no"`
	LicenseNo      string    `json:"license_no"`
	Address        string    `json:"address"`
	CarrierName    string    `json:"carrier_name"`
	Busy           bool      `json:"busy"`
}
