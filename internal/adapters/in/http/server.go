// Package http exposes the logistics use cases over a REST API built on
// Echo. Handlers translate between wire payloads and commands/queries; all
// business rules live below this layer.
package http

import (
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	addStockItemHandler      commands.AddStockItemCommandHandler
	updateStockItemHandler   commands.UpdateStockItemCommandHandler
	deleteStockItemHandler   commands.DeleteStockItemCommandHandler
	registerDriverHandler    commands.RegisterDriverCommandHandler
	createUserHandler        commands.CreateUserCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	getDriverOrdersHandler     queries.GetDriverOrdersQueryHandler
	getDriversHandler          queries.GetDriversQueryHandler
	getAllStockHandler         queries.GetAllStockQueryHandler
	dashboardStatsHandler      queries.DashboardStatsQueryHandler
	logisticsReportHandler     queries.LogisticsReportQueryHandler
	shipmentStatsHandler       queries.ShipmentStatsQueryHandler
	topDriversHandler          queries.TopDriversQueryHandler
	userOrderStatsHandler      queries.UserOrderStatsQueryHandler
	inventoryReportHandler     queries.InventoryReportQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	AddStockItem      commands.AddStockItemCommandHandler
	UpdateStockItem   commands.UpdateStockItemCommandHandler
	DeleteStockItem   commands.DeleteStockItemCommandHandler
	RegisterDriver    commands.RegisterDriverCommandHandler
	CreateUser        commands.CreateUserCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetUnassignedOrders queries.GetUnassignedOrdersQueryHandler
	GetDriverOrders     queries.GetDriverOrdersQueryHandler
	GetDrivers          queries.GetDriversQueryHandler
	GetAllStock         queries.GetAllStockQueryHandler
	DashboardStats      queries.DashboardStatsQueryHandler
	LogisticsReport     queries.LogisticsReportQueryHandler
	ShipmentStats       queries.ShipmentStatsQueryHandler
	TopDrivers          queries.TopDriversQueryHandler
	UserOrderStats      queries.UserOrderStatsQueryHandler
	InventoryReport     queries.InventoryReportQueryHandler
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		placeOrderHandler:        handlers.PlaceOrder,
		assignDriverHandler:      handlers.AssignDriver,
		updateOrderStatusHandler: handlers.UpdateOrderStatus,
		deleteOrderHandler:       handlers.DeleteOrder,
		addStockItemHandler:      handlers.AddStockItem,
		updateStockItemHandler:   handlers.UpdateStockItem,
		deleteStockItemHandler:   handlers.DeleteStockItem,
		registerDriverHandler:    handlers.RegisterDriver,
		createUserHandler:        handlers.CreateUser,

		getOrderHandler:            handlers.GetOrder,
		getAllOrdersHandler:        handlers.GetAllOrders,
		getUnassignedOrdersHandler: handlers.GetUnassignedOrders,
		getDriverOrdersHandler:     handlers.GetDriverOrders,
		getDriversHandler:          handlers.GetDrivers,
		getAllStockHandler:         handlers.GetAllStock,
		dashboardStatsHandler:      handlers.DashboardStats,
		logisticsReportHandler:     handlers.LogisticsReport,
		shipmentStatsHandler:       handlers.ShipmentStats,
		topDriversHandler:          handlers.TopDrivers,
		userOrderStatsHandler:      handlers.UserOrderStats,
		inventoryReportHandler:     handlers.InventoryReport,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/orders/:orderCode", s.GetOrder)
	api.PUT("/orders/:orderCode/driver", s.AssignDriver)
	api.PUT("/orders/:orderCode/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:orderCode", s.DeleteOrder)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers/top", s.GetTopDrivers)
	api.GET("/drivers/:driverID/orders", s.GetDriverOrders)

	api.GET("/stock", s.GetStock)
	api.POST("/stock", s.AddStockItem)
	api.PUT("/stock/:itemID", s.UpdateStockItem)
	api.DELETE("/stock/:itemID", s.DeleteStockItem)

	api.POST("/users", s.CreateUser)
	api.GET("/users/:userID/orders/stats", s.GetUserOrderStats)

	api.GET("/stats/dashboard", s.GetDashboardStats)
	api.GET("/stats/shipments", s.GetShipmentStats)
	api.GET("/reports/logistics", s.GetLogisticsReport)
	api.GET("/reports/inventory", s.GetInventoryReport)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := order.NewDeliveryAddress(req.RecipientName, req.RecipientAddress, req.RecipientContact)
	if err != nil {
		return respondError(ctx, err)
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return respondError(ctx, err)
	}

	initialStatus := order.StatusUnknown
	if req.Status != "" {
		if initialStatus, err = order.StatusFromString(req.Status); err != nil {
			return respondError(ctx, err)
		}
	}

	var driverID *kernel.UUID
	if req.DriverID != "" {
		id, idErr := kernel.UUIDFromString(req.DriverID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		driverID = &id
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.OrderCode, userID, productID, req.Quantity, address,
		orderType, initialStatus, req.ExpectedDeliveryDate, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	orders, err := s.getUnassignedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:orderCode.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderCode"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDriver handles PUT /api/v1/orders/:orderCode/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	var req AssignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(ctx.Param("orderCode"), driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderCode/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("orderCode"), newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderCode.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("orderCode"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/v1/drivers. The optional "busy" query
// parameter filters on availability.
func (s *Server) GetDrivers(ctx echo.Context) error {
	var busy *bool
	if raw := ctx.QueryParam("busy"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid busy filter")
		}
		busy = &parsed
	}

	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), queries.NewGetDriversQuery(busy))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, drivers)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterDriverCommand(
		req.Name, req.VehicleName, req.VehiclePlateNo, req.LicenseNo, req.Address, req.CarrierName)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTopDrivers handles GET /api/v1/drivers/top.
func (s *Server) GetTopDrivers(ctx echo.Context) error {
	drivers, err := s.topDriversHandler.Handle(ctx.Request().Context(), queries.NewTopDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, drivers)
}

// GetDriverOrders handles GET /api/v1/drivers/:driverID/orders.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverOrdersQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetStock handles GET /api/v1/stock.
func (s *Server) GetStock(ctx echo.Context) error {
	items, err := s.getAllStockHandler.Handle(ctx.Request().Context(), queries.NewGetAllStockQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// AddStockItem handles POST /api/v1/stock.
func (s *Server) AddStockItem(ctx echo.Context) error {
	var req StockItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddStockItemCommand(
		req.ProductName, req.SubCategory, req.Description,
		req.Price, req.Quantity, req.Origin, req.Location, req.Rack)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addStockItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateStockItem handles PUT /api/v1/stock/:itemID.
func (s *Server) UpdateStockItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req StockItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStockItemCommand(
		itemID, req.ProductName, req.SubCategory, req.Description,
		req.Price, req.Quantity, req.Origin, req.Location, req.Rack)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateStockItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteStockItem handles DELETE /api/v1/stock/:itemID.
func (s *Server) DeleteStockItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteStockItemCommand(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteStockItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(req.Username, req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUserOrderStats handles GET /api/v1/users/:userID/orders/stats.
func (s *Server) GetUserOrderStats(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewUserOrderStatsQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.userOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetDashboardStats handles GET /api/v1/stats/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.dashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewDashboardStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetShipmentStats handles GET /api/v1/stats/shipments.
func (s *Server) GetShipmentStats(ctx echo.Context) error {
	stats, err := s.shipmentStatsHandler.Handle(ctx.Request().Context(), queries.NewShipmentStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetLogisticsReport handles GET /api/v1/reports/logistics.
func (s *Server) GetLogisticsReport(ctx echo.Context) error {
	report, err := s.logisticsReportHandler.Handle(ctx.Request().Context(), queries.NewLogisticsReportQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetInventoryReport handles GET /api/v1/reports/inventory.
func (s *Server) GetInventoryReport(ctx echo.Context) error {
	report, err := s.inventoryReportHandler.Handle(ctx.Request().Context(), queries.NewInventoryReportQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}
