package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel an order.
// The full validation of the cancellation payload (reason length, comment
// length, acknowledgment) happens in the cancellation aggregate; the command
// only guards the identifying fields.
type CancelOrderCommand struct {
	orderID            string
	userID             string
	reason             string
	additionalComments string
	acknowledgment     bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a validated cancellation request.
func NewCancelOrderCommand(
	orderID, userID, reason, additionalComments string,
	acknowledgment bool,
) (CancelOrderCommand, error) {
	if orderID == "" {
		return CancelOrderCommand{}, ErrOrderIDIsRequired
	}
	if userID == "" {
		return CancelOrderCommand{}, ErrUserIDIsRequired
	}

	return CancelOrderCommand{
		orderID:            orderID,
		userID:             userID,
		reason:             reason,
		additionalComments: additionalComments,
		acknowledgment:     acknowledgment,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c *CancelOrderCommand) OrderID() string {
	return c.orderID
}

// UserID returns the requesting customer.
func (c *CancelOrderCommand) UserID() string {
	return c.userID
}

// Reason returns the cancellation reason.
func (c *CancelOrderCommand) Reason() string {
	return c.reason
}

// AdditionalComments returns the optional free-text comments.
func (c *CancelOrderCommand) AdditionalComments() string {
	return c.additionalComments
}

// Acknowledgment reports whether the requester acknowledged the terms.
func (c *CancelOrderCommand) Acknowledgment() bool {
	return c.acknowledgment
}
