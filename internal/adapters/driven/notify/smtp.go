package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// Ensure SMTPNotifier implements the interface.
var _ driven.Notifier = (*SMTPNotifier)(nil)

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier sends plain-text email through an SMTP server.
type SMTPNotifier struct {
	sender sender
	from   string
}

// NewSMTPNotifier creates a notifier from SMTP settings.
func NewSMTPNotifier(cfg domain.SMTPSettings) (*SMTPNotifier, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: smtp host not configured", domain.ErrInvalidInput)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: smtp sender address not configured", domain.ErrInvalidInput)
	}
	return &SMTPNotifier{
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}, nil
}

// Notify sends the message. Cancellation is only checked before dialing.
func (n *SMTPNotifier) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	logger.Debug("mail %q sent to %s", subject, to)
	return nil
}
