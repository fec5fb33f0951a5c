// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management over the local stores, and contained best-effort
// calls to the external collaborators.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers over the locally owned stores. Cross-service calls (order store,
// notifications) sit outside these boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a
	// transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CancellationRepoFactory provides access to the cancellation audit
	// repository within a transaction.
	CancellationRepoFactory interface {
		CancellationRepository() ports.CancellationRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW manages transactions across the driver registry and the
	// cancellation audit log.
	UoW interface {
		TxManager
		DriverRepoFactory
		CancellationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-store
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
