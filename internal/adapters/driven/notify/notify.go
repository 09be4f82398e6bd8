package notify

import (
	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
)

// FromSettings returns an SMTPNotifier when SMTP is configured and a LogNotifier otherwise.
func FromSettings(settings domain.Settings) (driven.Notifier, error) {
	if !settings.SMTP.Enabled() {
		return LogNotifier{}, nil
	}
	n, err := NewSMTPNotifier(settings.SMTP)
	if err != nil {
		return nil, err
	}
	return n, nil
}
