package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderStore is the client contract for the external order service, which
// owns order records. Every call is a blocking network operation that can
// fail independently; callers contain failures per operation.
type OrderStore interface {
	// GetByID fetches a single order.
	// Returns an errs.ObjectNotFoundError when the order does not exist.
	GetByID(ctx context.Context, orderID string) (*order.Order, error)

	// GetAll fetches every order known to the order store.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer fetches the orders placed by one customer.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// UpdateStatus writes a new lifecycle status for an order.
	UpdateStatus(ctx context.Context, orderID string, status order.Status) error

	// UpdateAssignment writes the order's assigned-driver fields and status
	// after a dispatch decision.
	UpdateAssignment(ctx context.Context, ord *order.Order) error

	// UpdateDelivery writes the order's delivered status and delivery time.
	UpdateDelivery(ctx context.Context, ord *order.Order) error
}
