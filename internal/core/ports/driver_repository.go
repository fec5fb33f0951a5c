// Package ports defines the contracts between the application core and the
// infrastructure adapters: local repositories, the unit of work, and the
// HTTP collaborators (order store, identity source, notification sender).
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Upsert persists a driver record, creating it when absent.
	// Used by the location-report flow and the identity sync.
	Upsert(ctx context.Context, driver *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, driver *driver.Driver) error

	// Get retrieves a driver by its identity-store reference.
	// Returns an errs.ObjectNotFoundError when no record exists.
	Get(ctx context.Context, userID string) (*driver.Driver, error)

	// GetAll retrieves every registered driver. Used by the identity sync to
	// find records that are no longer approved.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetAllAvailable retrieves drivers eligible for assignment: available,
	// delivery role, and a reported location. Result order is unspecified.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// MarkBusy atomically clears availability and increments the in-flight
	// counter by one at the store level.
	MarkBusy(ctx context.Context, userID string) error

	// MarkFree atomically restores availability and decrements the in-flight
	// counter by one at the store level, never below zero.
	MarkFree(ctx context.Context, userID string) error

	// Remove deletes a driver record. Used by the identity sync when the
	// person is no longer an approved driver.
	Remove(ctx context.Context, userID string) error
}
