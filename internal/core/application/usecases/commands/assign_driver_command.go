package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("orderID is required")
)

// AssignDriverCommand triggers the on-demand assignment of one order, e.g.
// right after its payment is confirmed.
type AssignDriverCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a validated on-demand assignment command.
func NewAssignDriverCommand(orderID string) (AssignDriverCommand, error) {
	if orderID == "" {
		return AssignDriverCommand{}, ErrOrderIDIsRequired
	}

	return AssignDriverCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c *AssignDriverCommand) OrderID() string {
	return c.orderID
}
