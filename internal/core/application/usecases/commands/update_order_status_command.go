package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand pushes a new lifecycle status to the order store.
// Any status value outside the enumerated set is rejected at construction.
type UpdateOrderStatusCommand struct {
	orderID string
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status update.
func NewUpdateOrderStatusCommand(orderID, status string) (UpdateOrderStatusCommand, error) {
	if orderID == "" {
		return UpdateOrderStatusCommand{}, ErrOrderIDIsRequired
	}

	parsed, err := order.NewStatus(status)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c *UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Status returns the validated target status.
func (c *UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
