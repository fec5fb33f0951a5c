package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignDriversCommandIsNotConstructed = errors.New(
	"AssignDriversCommand must be created via NewAssignDriversCommand constructor",
)

// AssignDriversCommand triggers a batch assignment sweep over every eligible
// pending order. Each order is matched with the nearest available driver;
// per-order failures are reported in the result list without aborting the
// rest of the sweep.
type AssignDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDriversCommand creates a new command to trigger the sweep.
func NewAssignDriversCommand() AssignDriversCommand {
	return AssignDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignDriversCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriversCommandIsNotConstructed)
}
