package cmd

import (
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

// CreateServerHandlers assembles the full handler set served over HTTP.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		AddStockItem:      c.CreateAddStockItemCommandHandler(),
		UpdateStockItem:   c.CreateUpdateStockItemCommandHandler(),
		DeleteStockItem:   c.CreateDeleteStockItemCommandHandler(),
		RegisterDriver:    c.CreateRegisterDriverCommandHandler(),
		CreateUser:        c.CreateCreateUserCommandHandler(),

		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
		GetUnassignedOrders: c.CreateGetUnassignedOrdersQueryHandler(),
		GetDriverOrders:     c.CreateGetDriverOrdersQueryHandler(),
		GetDrivers:          c.CreateGetDriversQueryHandler(),
		GetAllStock:         c.CreateGetAllStockQueryHandler(),
		DashboardStats:      c.CreateDashboardStatsQueryHandler(),
		LogisticsReport:     c.CreateLogisticsReportQueryHandler(),
		ShipmentStats:       c.CreateShipmentStatsQueryHandler(),
		TopDrivers:          c.CreateTopDriversQueryHandler(),
		UserOrderStats:      c.CreateUserOrderStatsQueryHandler(),
		InventoryReport:     c.CreateInventoryReportQueryHandler(),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAddStockItemCommandHandler() commands.AddStockItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStockItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateStockItemCommandHandler() commands.UpdateStockItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStockItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteStockItemCommandHandler() commands.DeleteStockItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteStockItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStockQueryHandler() queries.GetAllStockQueryHandler {
	return queries.NewGetAllStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardStatsQueryHandler() queries.DashboardStatsQueryHandler {
	return queries.NewDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLogisticsReportQueryHandler() queries.LogisticsReportQueryHandler {
	return queries.NewLogisticsReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateShipmentStatsQueryHandler() queries.ShipmentStatsQueryHandler {
	return queries.NewShipmentStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTopDriversQueryHandler() queries.TopDriversQueryHandler {
	return queries.NewTopDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateUserOrderStatsQueryHandler() queries.UserOrderStatsQueryHandler {
	return queries.NewUserOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateInventoryReportQueryHandler() queries.InventoryReportQueryHandler {
	return queries.NewInventoryReportQueryHandler(c.gormDB)
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
