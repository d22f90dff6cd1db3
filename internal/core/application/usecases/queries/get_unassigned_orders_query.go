package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves active orders with no driver, the work
// queue for dispatchers.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve unassigned orders.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}
