package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ReasonNoSuitableDriver is the failure reason reported when no eligible
// driver could be matched to an order.
const ReasonNoSuitableDriver = "no suitable driver"

// AssignmentResult is the per-order outcome of an assignment attempt.
type AssignmentResult struct {
	OrderID  string
	Assigned bool
	DriverID string
	Reason   string
}

// assignmentEngine holds the collaborators shared by the batch and on-demand
// assignment handlers and implements the commit sequence for one order:
// order-store write first, then the driver busy flag, then a best-effort
// notification. Later steps never roll back earlier ones.
type assignmentEngine struct {
	orderStore ports.OrderStore
	notifier   ports.Notifier
	dispatcher services.DriverDispatcher
	logger     *slog.Logger
}

func newAssignmentEngine(
	orderStore ports.OrderStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) assignmentEngine {
	return assignmentEngine{
		orderStore: orderStore,
		notifier:   notifier,
		dispatcher: services.NewDriverDispatcher(),
		logger:     logger,
	}
}

// assignOne matches one order against the candidate drivers and commits the
// assignment. The returned error carries the cause when the order could not
// be assigned; the result is always populated for batch reporting.
//
// On success the matched driver aggregate is marked busy in memory, so a
// batch run does not hand the same driver a second order.
func (e assignmentEngine) assignOne(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	ord *order.Order,
	drivers []*driver.Driver,
	requireContactIdentity bool,
) (AssignmentResult, error) {
	result := AssignmentResult{OrderID: ord.ID()}

	assigned, err := e.dispatcher.Dispatch(ord, drivers, requireContactIdentity)
	if errors.Is(err, services.ErrNoSuitableDriver) {
		result.Reason = ReasonNoSuitableDriver
		return result, err
	}
	if err != nil {
		result.Reason = err.Error()
		return result, err
	}

	if err = e.orderStore.UpdateAssignment(ctx, ord); err != nil {
		result.Reason = fmt.Sprintf("order update failed: %v", err)
		return result, err
	}

	result.Assigned = true
	result.DriverID = assigned.UserID()

	if err = driverRepo.MarkBusy(ctx, assigned.UserID()); err != nil {
		e.logger.Error("failed to mark driver busy",
			"driverId", assigned.UserID(), "orderId", ord.ID(), "error", err)
	}
	assigned.MarkBusy()

	e.notifyDriver(ctx, assigned, ord)

	return result, nil
}

// notifyDriver sends the assignment email. Failures are logged and never
// affect the assignment outcome.
func (e assignmentEngine) notifyDriver(ctx context.Context, assigned *driver.Driver, ord *order.Order) {
	if assigned.Email() == "" {
		e.logger.Warn("driver has no email on record, skipping notification",
			"driverId", assigned.UserID(), "orderId", ord.ID())
		return
	}

	subject := "New delivery assignment"
	body := fmt.Sprintf(
		"Hello %s,\n\nyou have been assigned order %s. Pick it up at %s and deliver it to %s.",
		assigned.Name(), ord.ID(), ord.RestaurantName(), ord.CustomerName())

	if err := e.notifier.Send(ctx, assigned.Email(), subject, body); err != nil {
		e.logger.Error("failed to notify driver",
			"driverId", assigned.UserID(), "orderId", ord.ID(), "error", err)
	}
}
