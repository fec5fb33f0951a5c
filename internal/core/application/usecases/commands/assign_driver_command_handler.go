package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/ports"
)

// AssignDriverCommandHandler assigns one order on demand.
//
// Unlike the batch sweep, the on-demand path propagates its failure: an
// ineligible order, a missing order, or the absence of a suitable driver all
// surface as errors to the caller (the payment-confirmation trigger).
// Drivers without contact identity on record are still eligible here.
type AssignDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	engine     assignmentEngine
}

// NewAssignDriverCommandHandler creates a handler for on-demand assignment.
func NewAssignDriverCommandHandler(
	uowFactory DriverUoWFactory,
	orderStore ports.OrderStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		engine:     newAssignmentEngine(orderStore, notifier, logger),
	}
}

// Handle assigns the nearest available driver to the command's order.
// Returns services.ErrNoSuitableDriver when no candidate qualifies.
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context,
	command AssignDriverCommand,
) (AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	ord, err := h.engine.orderStore.GetByID(ctx, command.OrderID())
	if err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}

	result, err := h.engine.assignOne(ctx, driverRepo, ord, drivers, false)
	if err != nil {
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	return result, nil
}
