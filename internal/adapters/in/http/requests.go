package http

import "time"

// Request bodies accepted by the REST API. Field names follow the wire
// convention used across the system (snake_case, statuses and order types
// as their display strings).

// PlaceOrderRequest is the body for POST /api/v1/orders.
type PlaceOrderRequest struct {
	OrderCode            string    `json:"order_code"`
	UserID               string    `json:"user_id"`
	ProductID            string    `json:"product_id"`
	Quantity             int       `json:"quantity"`
	RecipientName        string    `json:"recipient_name"`
	RecipientAddress     string    `json:"recipient_address"`
	RecipientContact     string    `json:"recipient_contact"`
	OrderType            string    `json:"order_type"`
	Status               string    `json:"status,omitempty"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	DriverID             string    `json:"driver_id,omitempty"`
}

// AssignDriverRequest is the body for PUT /api/v1/orders/:orderCode/driver.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// UpdateOrderStatusRequest is the body for PUT /api/v1/orders/:orderCode/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// StockItemRequest is the body for POST /api/v1/stock and PUT /api/v1/stock/:itemID.
type StockItemRequest struct {
	ProductName string  `json:"product_name"`
	SubCategory string  `json:"sub_category,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Origin      string  `json:"origin"`
	Location    string  `json:"location"`
	Rack        string  `json:"rack"`
}

// RegisterDriverRequest is the body for POST /api/v1/drivers.
type RegisterDriverRequest struct {
	Name           string `json:"name"`
	VehicleName    string `json:"vehicle_name"`
	VehiclePlateNo string `json:"vehicle_plate_no"`
	LicenseNo      string `json:"license_no"`
	Address        string `json:"address"`
	CarrierName    string `json:"carrier_name"`
}

// CreateUserRequest is the body for POST /api/v1/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
