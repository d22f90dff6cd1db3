package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Reserves stock for the requested quantity, optionally claims a driver, and
// creates the order inside a single transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Stock is reserved and the order is in Pending status
type PlaceOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a FulfillmentUoWFactory for transactional persistence and an
// OrderEventPublisher for post-commit notifications.
func NewPlaceOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Stock reservation happens first so an insufficient balance aborts the whole
// operation. When a driver is supplied, the claim must succeed for the order
// to be placed. The placed event is published best-effort after commit.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	if _, err := stockRepo.Reserve(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.OrderCode(),
		cmd.UserID(),
		cmd.ProductID(),
		cmd.Quantity(),
		cmd.DeliveryAddress(),
		cmd.OrderType(),
		cmd.InitialStatus(),
		cmd.ExpectedDeliveryDate(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if cmd.DriverID() != nil {
		if err = h.claimDriver(ctx, uow, newOrder, *cmd.DriverID()); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventID:    kernel.NewUUID().String(),
		EventType:  ports.EventOrderPlaced,
		OccurredAt: time.Now().UTC(),
		OrderCode:  newOrder.OrderCode(),
		Status:     newOrder.Status().String(),
		DriverID:   driverIDString(newOrder.DriverID()),
		ProductID:  newOrder.ProductID().String(),
		Quantity:   newOrder.Quantity(),
	})

	return nil
}

func (h *PlaceOrderCommandHandler) claimDriver(
	ctx context.Context,
	uow FulfillmentUoW,
	newOrder *order.Order,
	driverID kernel.UUID,
) error {
	driverRepo := uow.DriverRepository()
	if err := driverRepo.Claim(ctx, driverID); err != nil {
		return err
	}
	return newOrder.AssignDriver(driverID)
}

func driverIDString(driverID *kernel.UUID) string {
	if driverID == nil {
		return ""
	}
	return driverID.String()
}
