package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the locally
// owned stores (drivers, cancellation records). It provides transaction
// control; client code must explicitly manage the transaction lifecycle.
//
// Cross-service writes (order store, notifications) sit outside the unit of
// work by design: there is no distributed transaction across collaborators.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// CancellationRepository returns a CancellationRepository bound to the
	// current transaction.
	CancellationRepository() CancellationRepository
}
