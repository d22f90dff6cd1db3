package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// DeleteOrderCommandHandler handles the administrative removal of an order.
// Frees the assigned driver of an active order; the stock ledger is left
// untouched so that inventory corrections stay an explicit catalog edit.
type DeleteOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.OrderEventPublisher,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order deletion command.
// A driver on a completed order is already free, so only active orders
// trigger a release.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	deletedOrder, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	if deletedOrder.HasDriver() && deletedOrder.Status().IsActive() {
		driverRepo := uow.DriverRepository()
		if err = driverRepo.Release(ctx, *deletedOrder.DriverID()); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, deletedOrder.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventID:    kernel.NewUUID().String(),
		EventType:  ports.EventOrderDeleted,
		OccurredAt: time.Now().UTC(),
		OrderCode:  deletedOrder.OrderCode(),
		Status:     deletedOrder.Status().String(),
	})

	return nil
}
