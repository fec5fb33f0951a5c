package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CompleteDeliveryCommandHandler marks an order delivered and releases its
// driver. The order must be out for delivery. The order-store write is the
// committing step; releasing the driver afterwards is best-effort, with the
// identity sync as the safety net for a missed release.
type CompleteDeliveryCommandHandler struct {
	uowFactory DriverUoWFactory
	orderStore ports.OrderStore
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completions.
func NewCompleteDeliveryCommandHandler(
	uowFactory DriverUoWFactory,
	orderStore ports.OrderStore,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		orderStore: orderStore,
		logger:     logger,
	}
}

// Handle processes the completion and returns the delivered order.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CompleteDeliveryCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	ord, err := h.orderStore.GetByID(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.Deliver(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.orderStore.UpdateDelivery(ctx, ord); err != nil {
		return nil, err
	}

	if ord.IsAssigned() {
		h.freeDriver(ctx, *ord.AssignedDriverID(), ord.ID())
	}

	return ord, nil
}

func (h CompleteDeliveryCommandHandler) freeDriver(ctx context.Context, driverID, orderID string) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.Error("failed to free driver after delivery",
			"driverId", driverID, "orderId", orderID, "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DriverRepository().MarkFree(ctx, driverID); err != nil {
		h.logger.Error("failed to free driver after delivery",
			"driverId", driverID, "orderId", orderID, "error", err)
		return
	}

	if err := uow.Commit(ctx); err != nil {
		h.logger.Error("failed to free driver after delivery",
			"driverId", driverID, "orderId", orderID, "error", err)
	}
}
