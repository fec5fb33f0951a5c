package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// assignmentSchedule sweeps for unassigned paid orders every 30 seconds.
const assignmentSchedule = "*/30 * * * * *"

// AssignmentJob periodically matches eligible orders with the nearest
// available drivers.
type AssignmentJob struct {
	handler commands.AssignDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignmentJob creates the scheduled assignment sweep.
func NewAssignmentJob(handler commands.AssignDriversCommandHandler, logger *slog.Logger) *AssignmentJob {
	return &AssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "assignment_job"),
	}
}

// Start begins the assignment sweep on its schedule.
func (j *AssignmentJob) Start() error {
	_, err := j.cron.AddFunc(assignmentSchedule, func() {
		ctx := context.Background()

		results, err := j.handler.Handle(ctx, commands.NewAssignDriversCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Assignment sweep failed", "error", err)
			return
		}

		assigned := 0
		for _, result := range results {
			if result.Assigned {
				assigned++
			}
		}
		if len(results) > 0 {
			j.logger.InfoContext(ctx, "Assignment sweep finished",
				"eligible", len(results), "assigned", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment job started")
	return nil
}

// Stop stops the assignment sweep.
func (j *AssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment job stopped")
}
