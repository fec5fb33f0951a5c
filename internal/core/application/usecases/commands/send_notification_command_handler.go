package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// SendNotificationCommandHandler forwards a relay request to the
// notification sender.
type SendNotificationCommandHandler struct {
	notifier ports.Notifier
}

// NewSendNotificationCommandHandler creates a handler for notification
// relays.
func NewSendNotificationCommandHandler(notifier ports.Notifier) SendNotificationCommandHandler {
	return SendNotificationCommandHandler{
		notifier: notifier,
	}
}

// Handle processes the relay.
func (h SendNotificationCommandHandler) Handle(
	ctx context.Context,
	command SendNotificationCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.notifier.Send(ctx, command.To(), command.Subject(), command.Body())
}
