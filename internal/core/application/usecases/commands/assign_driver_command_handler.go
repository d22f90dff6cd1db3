package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// AssignDriverCommandHandler handles the business logic for driver
// assignment. Claims the requested driver, releases any previously assigned
// one, and updates the order inside a single transaction.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAssignDriverCommand("ORD-1001", driverID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver assignment failed: %w", err)
//	}
type AssignDriverCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment
// operations.
func NewAssignDriverCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the driver assignment command.
// Re-assigning the driver the order already has is a no-op. Assigning a
// different driver claims the new one first, so a failed claim leaves the
// current assignment untouched. The previous driver is freed in the same
// transaction.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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
	assignedOrder, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	previousDriverID := assignedOrder.DriverID()
	if previousDriverID != nil && previousDriverID.IsEqual(cmd.DriverID()) {
		return nil
	}

	driverRepo := uow.DriverRepository()
	if err = driverRepo.Claim(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = assignedOrder.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if previousDriverID != nil {
		if err = driverRepo.Release(ctx, *previousDriverID); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventID:    kernel.NewUUID().String(),
		EventType:  ports.EventDriverAssigned,
		OccurredAt: time.Now().UTC(),
		OrderCode:  assignedOrder.OrderCode(),
		Status:     assignedOrder.Status().String(),
		DriverID:   cmd.DriverID().String(),
	})

	return nil
}
