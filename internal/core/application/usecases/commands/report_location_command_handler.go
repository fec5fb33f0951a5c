package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

// ReportLocationCommandHandler upserts a driver record from a location ping.
// Unknown drivers are registered on their first ping; known drivers get their
// location updated and their identity fields refreshed from the latest known
// values.
type ReportLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewReportLocationCommandHandler creates a handler for location reports.
func NewReportLocationCommandHandler(uowFactory DriverUoWFactory) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location report and returns the driver record as
// persisted, so callers can echo it back.
func (h ReportLocationCommandHandler) Handle(
	ctx context.Context,
	command ReportLocationCommand,
) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	reporting, err := driverRepo.Get(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		reporting, err = driver.NewDriver(
			command.UserID(), command.Name(), command.Email(), command.Phone())
	}
	if err != nil {
		return nil, err
	}

	if err = reporting.UpdateLocation(command.Location()); err != nil {
		return nil, err
	}
	reporting.RefreshIdentity(command.Name(), command.Email(), command.Phone())

	if err = driverRepo.Upsert(ctx, reporting); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reporting, nil
}
