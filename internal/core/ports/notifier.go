package ports

import "context"

// Notifier is the client contract for the external notification sender.
// Delivery is fire-and-forget: callers log failures and never roll back
// surrounding work because of them.
type Notifier interface {
	// Send dispatches an email notification.
	Send(ctx context.Context, to, subject, body string) error
}
