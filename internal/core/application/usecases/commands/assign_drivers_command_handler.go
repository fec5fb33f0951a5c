package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AssignDriversCommandHandler runs the batch assignment sweep.
//
// The sweep fetches every order from the order store, keeps the eligible
// ones (pending, paid, unassigned), fetches the available drivers once, and
// assigns orders one by one. An order that cannot be matched or committed is
// reported as failed and the sweep continues; only a failure to fetch the
// order list or the driver list aborts the whole batch.
//
// Re-running the sweep with no intervening state change is safe: assigned
// orders are no longer pending and drop out of the eligibility filter.
type AssignDriversCommandHandler struct {
	uowFactory DriverUoWFactory
	engine     assignmentEngine
}

// NewAssignDriversCommandHandler creates a handler for batch assignment.
func NewAssignDriversCommandHandler(
	uowFactory DriverUoWFactory,
	orderStore ports.OrderStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDriversCommandHandler {
	return AssignDriversCommandHandler{
		uowFactory: uowFactory,
		engine:     newAssignmentEngine(orderStore, notifier, logger),
	}
}

// Handle processes the sweep and returns the per-order result list.
// An empty result list means no order was eligible.
func (h AssignDriversCommandHandler) Handle(
	ctx context.Context,
	command AssignDriversCommand,
) ([]AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.engine.orderStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]*order.Order, 0, len(orders))
	for _, ord := range orders {
		if ord.CheckAssignable() == nil {
			eligible = append(eligible, ord)
		}
	}
	if len(eligible) == 0 {
		return []AssignmentResult{}, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]AssignmentResult, 0, len(eligible))
	for _, ord := range eligible {
		// Batch assignment requires notifiable drivers, hence the contact
		// identity filter.
		result, _ := h.engine.assignOne(ctx, driverRepo, ord, drivers, true)
		results = append(results, result)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return results, nil
}
