package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand records a finished delivery: the order becomes
// delivered and its driver becomes available again.
type CompleteDeliveryCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a validated delivery completion command.
func NewCompleteDeliveryCommand(orderID string) (CompleteDeliveryCommand, error) {
	if orderID == "" {
		return CompleteDeliveryCommand{}, ErrOrderIDIsRequired
	}

	return CompleteDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c *CompleteDeliveryCommand) OrderID() string {
	return c.orderID
}
