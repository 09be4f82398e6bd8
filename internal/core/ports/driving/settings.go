package driving

import "github.com/custodia-labs/psychmatch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults for unset keys.
	Get() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error

	// Set parses raw according to key's type and persists it.
	// Returns domain.ErrInvalidInput for unknown keys or malformed values.
	Set(key, raw string) error

	// Keys returns the recognised configuration keys.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
