package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status, driverID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-1001", kernel.NewUUID(), kernel.NewUUID(), 4,
		testAddress(t), order.TypeOutbound, status, driverID,
		time.Now().AddDate(0, 0, 3), time.Now().AddDate(0, 0, -1),
	)
	require.NoError(t, err)
	return o
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", driverID)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusPending, nil)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Claim", ctx, driverID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.DriverID())
	assert.Equal(t, driverID, *testOrder.DriverID())

	event := publisher.Calls[0].Arguments[1].(ports.OrderEvent)
	assert.Equal(t, ports.EventDriverAssigned, event.EventType)
	assert.Equal(t, driverID.String(), event.DriverID)

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_SwapsPreviousDriver(t *testing.T) {
	ctx := t.Context()
	previousID := kernel.NewUUID()
	newID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", newID)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusConfirmed, &previousID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Claim", ctx, newID).Return(nil).Once(),
		driverRepo.On("Release", ctx, previousID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.DriverID())
	assert.Equal(t, newID, *testOrder.DriverID())
	driverRepo.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_SameDriverIsNoOp(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", driverID)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusConfirmed, &driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
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

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand("ORD-9999", kernel.NewUUID())
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

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignDriverCommandHandler_Handle_DriverUnavailable(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", driverID)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusPending, nil)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Claim", ctx, driverID).
			Return(errs.NewDriverUnavailableError(driverID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDriverUnavailable)
	assert.Nil(t, testOrder.DriverID())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", driverID)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusDelivered, nil)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Claim", ctx, driverID).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderIsTerminal)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDriverCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	publisher := new(MockEventPublisher)
	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDriverCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", driverID)
	require.NoError(t, err)

	testOrder := restoredOrder(t, order.StatusPending, nil)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFulfillmentUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, "ORD-1001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Claim", ctx, driverID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
