package driven

import "context"

// Notifier delivers messages to users outside the application.
type Notifier interface {
	// Notify sends a message with the given subject to an email address.
	Notify(ctx context.Context, to, subject, body string) error
}
