package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/cancellation"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ErrNotOrderOwner is returned when the cancellation requester is not the
// customer who placed the order.
var ErrNotOrderOwner = errors.New("only the order's customer may cancel it")

// CancellationSummary is the structured outcome of a cancellation: the
// cancelled order, a description of the driver that was attached (or "not
// assigned"), and the persisted audit record.
type CancellationSummary struct {
	Order             *order.Order
	DriverDescription string
	Record            *cancellation.Cancellation
}

// CancelOrderCommandHandler validates and executes order cancellations.
//
// Sequence: fetch and authorize, check the cancellable set, persist the
// audit record locally, transition the order to cancelled in the order
// store, then release and notify the assigned driver. Driver release and
// notification failures are logged and never fail the cancellation.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	orderStore ports.OrderStore
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	orderStore ports.OrderStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		orderStore: orderStore,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the cancellation and returns its structured summary.
func (h CancelOrderCommandHandler) Handle(
	ctx context.Context,
	command CancelOrderCommand,
) (*CancellationSummary, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	ord, err := h.orderStore.GetByID(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if ord.CustomerID() != command.UserID() {
		return nil, ErrNotOrderOwner
	}

	statusSnapshot := ord.Status()
	if err = ord.Cancel(); err != nil {
		return nil, err
	}

	record, err := cancellation.NewCancellation(
		command.OrderID(),
		command.UserID(),
		command.Reason(),
		command.AdditionalComments(),
		command.Acknowledgment(),
		statusSnapshot,
	)
	if err != nil {
		return nil, err
	}

	if err = h.persistRecord(ctx, record); err != nil {
		return nil, err
	}

	if err = h.orderStore.UpdateStatus(ctx, ord.ID(), order.Cancelled); err != nil {
		return nil, err
	}

	driverDescription := "not assigned"
	if ord.IsAssigned() {
		driverDescription = h.releaseDriver(ctx, ord)
	}

	return &CancellationSummary{
		Order:             ord,
		DriverDescription: driverDescription,
		Record:            record,
	}, nil
}

// persistRecord stores the immutable audit entry in its own transaction,
// before the order store is touched. A cancellation attempt that passed the
// eligibility checks leaves a record even if the status write later fails.
func (h CancelOrderCommandHandler) persistRecord(
	ctx context.Context,
	record *cancellation.Cancellation,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CancellationRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseDriver marks the attached driver free and notifies them.
// Both steps are best-effort; failures are logged only.
func (h CancelOrderCommandHandler) releaseDriver(ctx context.Context, ord *order.Order) string {
	driverID := *ord.AssignedDriverID()

	description := ord.AssignedDriverName()
	if description == "" {
		description = driverID
	}

	attached, err := h.markFreeAndLookUp(ctx, driverID)
	if err != nil {
		h.logger.Error("failed to release driver after cancellation",
			"driverId", driverID, "orderId", ord.ID(), "error", err)
		return description
	}

	h.notifyDriver(ctx, attached, ord)

	return description
}

func (h CancelOrderCommandHandler) markFreeAndLookUp(
	ctx context.Context,
	driverID string,
) (*driver.Driver, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	if err := driverRepo.MarkFree(ctx, driverID); err != nil {
		return nil, err
	}

	attached, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return attached, nil
}

func (h CancelOrderCommandHandler) notifyDriver(
	ctx context.Context,
	attached *driver.Driver,
	ord *order.Order,
) {
	if attached.Email() == "" {
		h.logger.Warn("driver has no email on record, skipping cancellation notice",
			"driverId", attached.UserID(), "orderId", ord.ID())
		return
	}

	subject := "Delivery cancelled"
	body := fmt.Sprintf(
		"Hello %s,\n\norder %s has been cancelled by the customer. No pickup is needed.",
		attached.Name(), ord.ID())

	if err := h.notifier.Send(ctx, attached.Email(), subject, body); err != nil {
		h.logger.Error("failed to notify driver about cancellation",
			"driverId", attached.UserID(), "orderId", ord.ID(), "error", err)
	}
}
