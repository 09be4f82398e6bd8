package notify

import (
	"context"
	"sync"

	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// Ensure the fallbacks implement the interface.
var (
	_ driven.Notifier = LogNotifier{}
	_ driven.Notifier = (*Outbox)(nil)
)

// LogNotifier logs notifications instead of delivering them.
// Used when no SMTP server is configured.
type LogNotifier struct{}

// Notify logs the notification.
func (LogNotifier) Notify(_ context.Context, to, subject, body string) error {
	logger.Info("notify %s: %s: %s", to, subject, body)
	return nil
}

// Notification is a message kept by Outbox.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Outbox records notifications in memory.
type Outbox struct {
	mu   sync.Mutex
	sent []Notification
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

// Notify records the notification.
func (o *Outbox) Notify(_ context.Context, to, subject, body string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, Notification{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns the recorded notifications, oldest first.
func (o *Outbox) Sent() []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Notification(nil), o.sent...)
}
