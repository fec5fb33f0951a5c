package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrSendNotificationCommandIsNotConstructed = errors.New(
		"SendNotificationCommand must be created via NewSendNotificationCommand constructor",
	)
	ErrRecipientIsRequired = errors.New("recipient is required")
	ErrSubjectIsRequired   = errors.New("subject is required")
	ErrBodyIsRequired      = errors.New("body is required")
)

// SendNotificationCommand relays an ad-hoc email through the notification
// sender. Unlike the assignment and cancellation notices, relayed messages
// are not best-effort: the caller asked for exactly this send and gets the
// failure back.
type SendNotificationCommand struct {
	to      string
	subject string
	body    string

	guard guard.ConstructorGuard
}

// NewSendNotificationCommand creates a validated relay request.
func NewSendNotificationCommand(to, subject, body string) (SendNotificationCommand, error) {
	if to == "" {
		return SendNotificationCommand{}, ErrRecipientIsRequired
	}
	if subject == "" {
		return SendNotificationCommand{}, ErrSubjectIsRequired
	}
	if body == "" {
		return SendNotificationCommand{}, ErrBodyIsRequired
	}

	return SendNotificationCommand{
		to:      to,
		subject: subject,
		body:    body,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *SendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationCommandIsNotConstructed)
}

// To returns the recipient address.
func (c *SendNotificationCommand) To() string {
	return c.to
}

// Subject returns the message subject.
func (c *SendNotificationCommand) Subject() string {
	return c.subject
}

// Body returns the message body.
func (c *SendNotificationCommand) Body() string {
	return c.body
}
