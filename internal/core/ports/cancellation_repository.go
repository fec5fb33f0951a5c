package ports

import (
	"context"

	"dispatch/internal/core/domain/model/cancellation"
)

// CancellationRepository defines the persistence contract for the immutable
// cancellation audit records.
type CancellationRepository interface {
	// Add persists a new cancellation record. Records are never updated or
	// deleted afterwards.
	Add(ctx context.Context, record *cancellation.Cancellation) error

	// GetByOrderID retrieves all cancellation records for an order, newest
	// first. Repeated cancellation attempts each leave their own record.
	GetByOrderID(ctx context.Context, orderID string) ([]*cancellation.Cancellation, error)
}
