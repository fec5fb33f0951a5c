package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrSyncDriversCommandIsNotConstructed = errors.New(
	"SyncDriversCommand must be created via NewSyncDriversCommand constructor",
)

// SyncDriversCommand triggers a reconciliation of the driver registry
// against the identity store.
type SyncDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncDriversCommand creates a new command to trigger the sync.
func NewSyncDriversCommand() SyncDriversCommand {
	return SyncDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SyncDriversCommand) Validate() error {
	return c.guard.Validate(ErrSyncDriversCommandIsNotConstructed)
}
