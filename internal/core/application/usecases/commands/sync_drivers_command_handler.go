package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
)

// SyncResult aggregates the outcome of one registry reconciliation.
type SyncResult struct {
	Added   int
	Updated int
	Removed int
	Failed  int
}

// SyncDriversCommandHandler reconciles the driver registry against the
// identity store: drivers no longer approved are removed, approved people
// are inserted or get their identity fields refreshed.
//
// The reconciliation is best-effort per driver: a failure on one record is
// logged and counted, and the rest of the sweep continues. Only a failure to
// fetch the approved list aborts the sync.
type SyncDriversCommandHandler struct {
	uowFactory     DriverUoWFactory
	identitySource ports.IdentitySource
	logger         *slog.Logger
}

// NewSyncDriversCommandHandler creates a handler for registry syncs.
func NewSyncDriversCommandHandler(
	uowFactory DriverUoWFactory,
	identitySource ports.IdentitySource,
	logger *slog.Logger,
) SyncDriversCommandHandler {
	return SyncDriversCommandHandler{
		uowFactory:     uowFactory,
		identitySource: identitySource,
		logger:         logger,
	}
}

// Handle runs the reconciliation and reports its counters.
func (h SyncDriversCommandHandler) Handle(
	ctx context.Context,
	command SyncDriversCommand,
) (SyncResult, error) {
	if err := command.Validate(); err != nil {
		return SyncResult{}, err
	}

	records, err := h.identitySource.GetApprovedDrivers(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	approved := make(map[string]ports.IdentityRecord, len(records))
	for _, record := range records {
		if record.ID == "" || record.Role != driver.RoleDeliveryPerson {
			continue
		}
		approved[record.ID] = record
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SyncResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	registered, err := driverRepo.GetAll(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	var result SyncResult

	known := make(map[string]*driver.Driver, len(registered))
	for _, existing := range registered {
		known[existing.UserID()] = existing

		if _, stillApproved := approved[existing.UserID()]; stillApproved {
			continue
		}

		if err = driverRepo.Remove(ctx, existing.UserID()); err != nil {
			h.logger.Error("failed to remove unapproved driver",
				"driverId", existing.UserID(), "error", err)
			result.Failed++
			continue
		}
		result.Removed++
	}

	for userID, record := range approved {
		existing, ok := known[userID]
		if ok {
			existing.RefreshIdentity(record.Name, record.Email, record.Phone)
			if err = driverRepo.Update(ctx, existing); err != nil {
				h.logger.Error("failed to update driver from identity store",
					"driverId", userID, "error", err)
				result.Failed++
				continue
			}
			result.Updated++
			continue
		}

		fresh, err := driver.NewDriver(userID, record.Name, record.Email, record.Phone)
		if err != nil {
			h.logger.Error("failed to register driver from identity store",
				"driverId", userID, "error", err)
			result.Failed++
			continue
		}
		if err = driverRepo.Upsert(ctx, fresh); err != nil {
			h.logger.Error("failed to register driver from identity store",
				"driverId", userID, "error", err)
			result.Failed++
			continue
		}
		result.Added++
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncResult{}, err
	}

	return result, nil
}
