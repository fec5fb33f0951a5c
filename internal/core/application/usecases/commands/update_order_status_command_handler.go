package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// UpdateOrderStatusCommandHandler forwards a validated status change to the
// order store. The order must exist; the enumerated-set check already
// happened at command construction.
type UpdateOrderStatusCommandHandler struct {
	orderStore ports.OrderStore
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(orderStore ports.OrderStore) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderStore: orderStore,
	}
}

// Handle processes the status update.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderStatusCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.orderStore.GetByID(ctx, command.OrderID()); err != nil {
		return err
	}

	return h.orderStore.UpdateStatus(ctx, command.OrderID(), command.Status())
}
