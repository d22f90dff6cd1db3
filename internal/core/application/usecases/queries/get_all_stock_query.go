package queries

import (
	"errors"

	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetAllStockQueryIsNotConstructed = errors.New(
	"GetAllStockQuery must be created via NewGetAllStockQuery constructor",
)

// GetAllStockQuery retrieves the whole stock catalog.
type GetAllStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllStockQuery creates a query to retrieve the stock catalog.
func NewGetAllStockQuery() GetAllStockQuery {
	return GetAllStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllStockQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStockQueryIsNotConstructed)
}

// StockItemResponse represents one catalog entry with its live quantity.
type StockItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	SubCategory string    `json:"sub_category,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Origin      string    `json:"origin"`
	Location    string    `json:"location"`
	Rack        string    `json:"rack"`
}
