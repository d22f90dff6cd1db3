package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder("ORD-1001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderCode_ReturnsDuplicateKeyError() {
	ctx := context.Background()

	first := suite.createPendingOrder("ORD-1001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createPendingOrder("ORD-1001")
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrDuplicateKey)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createPendingOrder("ORD-2001")
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.GetByCode(ctx, "ORD-2001")
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("ORD-2001", retrievedOrder.OrderCode())
	suite.Equal(originalOrder.UserID(), retrievedOrder.UserID())
	suite.Equal(originalOrder.ProductID(), retrievedOrder.ProductID())
	suite.Equal(originalOrder.Quantity(), retrievedOrder.Quantity())
	suite.Equal(order.StatusPending, retrievedOrder.Status())
	suite.Equal(order.TypeOutbound, retrievedOrder.OrderType())
	suite.True(originalOrder.DeliveryAddress().IsEqual(retrievedOrder.DeliveryAddress()))
	suite.Nil(retrievedOrder.DriverID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByCode(ctx, "ORD-9999")

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndDriver_Persisted() {
	ctx := context.Background()

	pendingOrder := suite.createPendingOrder("ORD-3001")
	suite.tracker.On("TrackAggregate", pendingOrder.ID(), pendingOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(pendingOrder.TransitionTo(order.StatusConfirmed))
	suite.Require().NoError(pendingOrder.AssignDriver(driverID))

	suite.tracker.On("TrackAggregate", pendingOrder.ID(), pendingOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, pendingOrder))

	retrievedOrder, err := suite.repository.GetByCode(ctx, "ORD-3001")
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.DriverID())
	suite.True(driverID.IsEqual(*retrievedOrder.DriverID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentOrder := suite.createPendingOrder("ORD-4001")

	err := suite.repository.Update(ctx, nonExistentOrder)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()

	older := suite.createOrderPlacedAt("ORD-5001", time.Now().Add(-48*time.Hour))
	newer := suite.createOrderPlacedAt("ORD-5002", time.Now().Add(-1*time.Hour))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("ORD-5002", orders[0].OrderCode())
	suite.Equal("ORD-5001", orders[1].OrderCode())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnassigned_SkipsAssignedAndTerminalOrders() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	unassigned := suite.createPendingOrder("ORD-6001")
	assigned := suite.restoreOrderWith("ORD-6002", order.StatusConfirmed, &driverID)
	cancelled := suite.restoreOrderWith("ORD-6003", order.StatusCancelled, nil)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	orders, err := suite.repository.GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal("ORD-6001", orders[0].OrderCode())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByDriver_ReturnsAllStatuses() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()
	active := suite.restoreOrderWith("ORD-7001", order.StatusInTransit, &driverID)
	delivered := suite.restoreOrderWith("ORD-7002", order.StatusDelivered, &driverID)
	foreign := suite.restoreOrderWith("ORD-7003", order.StatusConfirmed, &otherDriverID)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	orders, err := suite.repository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Require().NotNil(o.DriverID())
		suite.True(driverID.IsEqual(*o.DriverID()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByProduct_IgnoresTerminalOrders() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	pending := suite.restoreOrderForProduct("ORD-8001", productID, order.StatusPending)
	inTransit := suite.restoreOrderForProduct("ORD-8002", productID, order.StatusInTransit)
	delivered := suite.restoreOrderForProduct("ORD-8003", productID, order.StatusDelivered)
	cancelled := suite.restoreOrderForProduct("ORD-8004", productID, order.StatusCancelled)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)
	for _, o := range []*order.Order{pending, inTransit, delivered, cancelled} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	count, err := suite.repository.CountActiveByProduct(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	otherCount, err := suite.repository.CountActiveByProduct(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), otherCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder("ORD-9001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))
	suite.assertOrderCount(0)

	err := suite.repository.Delete(ctx, testOrder.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createPendingOrder creates a basic pending outbound order.
func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrder(orderCode string) *order.Order {
	return suite.createOrderPlacedAt(orderCode, time.Now())
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrderPlacedAt(
	orderCode string, placedAt time.Time,
) *order.Order {
	address, err := order.NewDeliveryAddress("Priya Sharma", "14 Market Road", "+91-900000001")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderCode,
		kernel.NewUUID(),
		kernel.NewUUID(),
		4,
		address,
		order.TypeOutbound,
		order.StatusPending,
		time.Now().Add(72*time.Hour),
		placedAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// restoreOrderWith rebuilds an order in an arbitrary status, optionally
// referencing a driver.
func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderWith(
	orderCode string, status order.Status, driverID *kernel.UUID,
) *order.Order {
	address, err := order.NewDeliveryAddress("Priya Sharma", "14 Market Road", "+91-900000001")
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		orderCode,
		kernel.NewUUID(),
		kernel.NewUUID(),
		4,
		address,
		order.TypeOutbound,
		status,
		driverID,
		time.Now().Add(72*time.Hour),
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderForProduct(
	orderCode string, productID kernel.UUID, status order.Status,
) *order.Order {
	address, err := order.NewDeliveryAddress("Priya Sharma", "14 Market Road", "+91-900000001")
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		orderCode,
		kernel.NewUUID(),
		productID,
		4,
		address,
		order.TypeOutbound,
		status,
		nil,
		time.Now().Add(72*time.Hour),
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
