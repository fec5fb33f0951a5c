// Package jobs provides the service's scheduled background tasks, built on
// github.com/robfig/cron/v3.
//
// Two jobs run: AssignmentJob sweeps for unassigned paid orders every 30
// seconds, and DriverSyncJob reconciles the driver registry against the
// identity store every 10 minutes. Both are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(assignDriversHandler, syncDriversHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	assignmentJob *AssignmentJob
	driverSyncJob *DriverSyncJob
}

// NewJobManager creates a job manager wired to the given command handlers.
func NewJobManager(
	assignDriversHandler commands.AssignDriversCommandHandler,
	syncDriversHandler commands.SyncDriversCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentJob: NewAssignmentJob(assignDriversHandler, logger),
		driverSyncJob: NewDriverSyncJob(syncDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs. Returns an error if any job fails to
// start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment job: %w", err)
	}

	if err := jm.driverSyncJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.assignmentJob.Stop()
		return fmt.Errorf("failed to start driver sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverSyncJob.Stop()
	jm.assignmentJob.Stop()
}
