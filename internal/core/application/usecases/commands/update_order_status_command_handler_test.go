package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Forward(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusConfirmed)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusPending, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, testOrder.Status())

	event := publisher.Calls[0].Arguments[1].(ports.OrderEvent)
	assert.Equal(t, ports.EventStatusChanged, event.EventType)
	assert.Equal(t, "Confirmed", event.Status)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelRestoresStock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusCancelled)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusPending, nil)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Release", ctx, testOrder.ProductID(), testOrder.Quantity()).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, testOrder.Status())
	stockRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelReleasesDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusCancelled)
	require.NoError(t, err)

	driverID := kernel.NewUUID()
	testOrder := restoredOrder(t, order.StatusConfirmed, &driverID)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Release", ctx, testOrder.ProductID(), testOrder.Quantity()).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Release", ctx, driverID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredKeepsDriverReference(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusDelivered)
	require.NoError(t, err)

	driverID := kernel.NewUUID()
	testOrder := restoredOrder(t, order.StatusOutForDelivery, &driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Release", ctx, driverID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	// The driver stays on the order for delivery history.
	require.NotNil(t, testOrder.DriverID())
	assert.Equal(t, driverID, *testOrder.DriverID())
}

func TestUpdateOrderStatusCommandHandler_Handle_BackwardTransitionRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusPending)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusInTransit, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.StatusInTransit, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelAfterDispatchRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusCancelled)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusInTransit, nil)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	stockRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1001", order.StatusConfirmed)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusDelivered, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-9999", order.StatusConfirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-9999").
			Return(nil, errs.NewObjectNotFoundError("orderCode", "ORD-9999")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	publisher := new(MockEventPublisher)
	handler := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
