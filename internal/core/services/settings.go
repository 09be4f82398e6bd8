package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyMatchRequirement = "matching.requirement"
	KeyMatchAspects     = "matching.aspects"
	KeyServerAddr       = "server.addr"
	KeySMTPHost         = "smtp.host"
	KeySMTPPort         = "smtp.port"
	KeySMTPUsername     = "smtp.username"
	KeySMTPPassword     = "smtp.password"
	KeySMTPFrom         = "smtp.from"
	KeyBaseURL          = "app.base_url"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindFloat
	kindList
)

var settingKeys = []struct {
	key  string
	kind keyKind
}{
	{KeyMatchRequirement, kindFloat},
	{KeyMatchAspects, kindList},
	{KeyServerAddr, kindString},
	{KeySMTPHost, kindString},
	{KeySMTPPort, kindInt},
	{KeySMTPUsername, kindString},
	{KeySMTPPassword, kindString},
	{KeySMTPFrom, kindString},
	{KeyBaseURL, kindString},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.Settings{
		Matching: domain.MatchingSettings{
			Requirement: s.getFloat(KeyMatchRequirement, defaults.Matching.Requirement),
			Aspects:     s.getList(KeyMatchAspects, defaults.Matching.Aspects),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(KeyServerAddr, defaults.Server.Addr),
		},
		SMTP: domain.SMTPSettings{
			Host:     s.configStore.GetString(KeySMTPHost),
			Port:     s.getInt(KeySMTPPort, defaults.SMTP.Port),
			Username: s.configStore.GetString(KeySMTPUsername),
			Password: s.configStore.GetString(KeySMTPPassword),
			From:     s.configStore.GetString(KeySMTPFrom),
		},
		App: domain.AppSettings{
			BaseURL: s.getString(KeyBaseURL, defaults.App.BaseURL),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyMatchRequirement, settings.Matching.Requirement},
		{KeyMatchAspects, settings.Matching.Aspects},
		{KeyServerAddr, settings.Server.Addr},
		{KeySMTPHost, settings.SMTP.Host},
		{KeySMTPPort, settings.SMTP.Port},
		{KeySMTPUsername, settings.SMTP.Username},
		{KeySMTPFrom, settings.SMTP.From},
		{KeyBaseURL, settings.App.BaseURL},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only persist the password when one is given
	if settings.SMTP.Password != "" {
		if err := s.configStore.Set(KeySMTPPassword, settings.SMTP.Password); err != nil {
			return fmt.Errorf("save %s: %w", KeySMTPPassword, err)
		}
	}

	return nil
}

// Set parses raw according to the key's type and persists it.
func (s *SettingsService) Set(key, raw string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	kind, ok := lookupKey(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var value any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		value = n
	case kindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		value = f
	case kindList:
		value = splitList(raw)
	default:
		value = raw
	}

	if key == KeyMatchAspects {
		if _, err := views.AspectsByName(value.([]string)); err != nil {
			return err
		}
	}

	return s.configStore.Set(key, value)
}

// Keys returns the recognised configuration keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return ValidateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ValidateSettings checks settings regardless of where they came from.
func ValidateSettings(settings *domain.Settings) error {
	if settings.Matching.Requirement < 0 {
		return fmt.Errorf("%w: match requirement must not be negative", domain.ErrInvalidInput)
	}
	if _, err := views.AspectsByName(settings.Matching.Aspects); err != nil {
		return err
	}
	if settings.SMTP.Enabled() && settings.SMTP.From == "" {
		return fmt.Errorf("%w: smtp.from is required when smtp.host is set", domain.ErrInvalidInput)
	}
	return nil
}

func lookupKey(key string) (keyKind, bool) {
	for _, k := range settingKeys {
		if k.key == key {
			return k.kind, true
		}
	}
	return kindString, false
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getList(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
