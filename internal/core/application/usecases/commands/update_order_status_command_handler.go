package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles the business logic for order
// status transitions. A cancellation returns the reserved quantity to the
// stock ledger, and any terminal transition frees the assigned driver while
// the order keeps referencing them for delivery history.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewUpdateOrderStatusCommand("ORD-1001", order.StatusDelivered)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transition
// operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
// The transition, the stock restoration on cancel, and the driver release on
// a terminal status all commit atomically. Illegal transitions (backward,
// skipping forward, or out of a terminal status) are rejected before any
// side effect.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) error {
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

	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	if err = trackedOrder.TransitionTo(cmd.NewStatus()); err != nil {
		return err
	}

	if cmd.NewStatus() == order.StatusCancelled {
		stockRepo := uow.StockRepository()
		if err = stockRepo.Release(ctx, trackedOrder.ProductID(), trackedOrder.Quantity()); err != nil {
			return err
		}
	}

	if cmd.NewStatus().IsTerminal() && trackedOrder.HasDriver() {
		driverRepo := uow.DriverRepository()
		if err = driverRepo.Release(ctx, *trackedOrder.DriverID()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventID:    kernel.NewUUID().String(),
		EventType:  ports.EventStatusChanged,
		OccurredAt: time.Now().UTC(),
		OrderCode:  trackedOrder.OrderCode(),
		Status:     trackedOrder.Status().String(),
		DriverID:   driverIDString(trackedOrder.DriverID()),
	})

	return nil
}
