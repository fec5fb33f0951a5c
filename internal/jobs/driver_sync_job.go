package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// driverSyncSchedule reconciles the registry every 10 minutes.
const driverSyncSchedule = "0 */10 * * * *"

// DriverSyncJob periodically reconciles the driver registry against the
// identity store.
type DriverSyncJob struct {
	handler commands.SyncDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverSyncJob creates the scheduled registry reconciliation.
func NewDriverSyncJob(handler commands.SyncDriversCommandHandler, logger *slog.Logger) *DriverSyncJob {
	return &DriverSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_sync_job"),
	}
}

// Start begins the registry reconciliation on its schedule.
func (j *DriverSyncJob) Start() error {
	_, err := j.cron.AddFunc(driverSyncSchedule, func() {
		ctx := context.Background()

		result, err := j.handler.Handle(ctx, commands.NewSyncDriversCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver sync failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Driver sync finished",
			"added", result.Added, "updated", result.Updated,
			"removed", result.Removed, "failed", result.Failed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver sync job started")
	return nil
}

// Stop stops the registry reconciliation.
func (j *DriverSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver sync job stopped")
}
