package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves every order referencing a driver, the
// driver's full work history including delivered orders.
type GetDriverOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for the given driver's orders.
func NewGetDriverOrdersQuery(driverID kernel.UUID) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return GetDriverOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are requested.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}
