// Package app assembles the document store, view engine and services
// into a ready-to-use application.
package app

import (
	"fmt"
	"time"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/config/env"
	"github.com/custodia-labs/psychmatch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/psychmatch/internal/adapters/driven/notify"
	"github.com/custodia-labs/psychmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/core/services"
	"github.com/custodia-labs/psychmatch/internal/logger"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// App holds the wired services. The engine owns exactly one in-memory store.
type App struct {
	Settings domain.Settings
	Store    *memory.DocumentStore
	Engine   *services.ViewEngine
	Users    *services.UserService
	Messages *services.MessageService
	Matches  *services.MatchService
	Config   *services.SettingsService
	Notifier driven.Notifier

	// ConfigStore backs Config. In-memory unless the app was loaded from a file.
	ConfigStore driven.ConfigStore
}

type options struct {
	notifier    driven.Notifier
	now         func() time.Time
	registry    *views.Registry
	configStore driven.ConfigStore
}

// Option customises New.
type Option func(*options)

// WithNotifier overrides the notifier chosen from settings.
func WithNotifier(n driven.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithClock sets the clock used for document and message timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRegistry installs views from r instead of the default registry.
func WithRegistry(r *views.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithConfigStore backs App.Config with store.
func WithConfigStore(store driven.ConfigStore) Option {
	return func(o *options) { o.configStore = store }
}

// New wires an application around settings.
func New(settings domain.Settings, opts ...Option) (*App, error) {
	o := options{registry: views.Defaults()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := services.ValidateSettings(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	if o.notifier == nil {
		n, err := notify.FromSettings(settings)
		if err != nil {
			return nil, err
		}
		o.notifier = n
	}
	if o.configStore == nil {
		o.configStore = memory.NewConfigStore(nil)
	}

	var storeOpts []memory.Option
	if o.now != nil {
		storeOpts = append(storeOpts, memory.WithClock(o.now))
	}
	store := memory.NewDocumentStore(storeOpts...)
	engine := services.NewViewEngine(store)
	if err := o.registry.Install(engine, settings); err != nil {
		return nil, fmt.Errorf("install views: %w", err)
	}

	users := services.NewUserService(engine, o.notifier, settings)
	messages := services.NewMessageService(engine, users)
	if o.now != nil {
		messages = messages.WithClock(o.now)
	}

	logger.Debug("app ready with views %v", engine.Views())

	return &App{
		Settings: settings,
		Store:    store,
		Engine:   engine,
		Users:    users,
		Messages: messages,
		Matches:  services.NewMatchService(engine),
		Config:   services.NewSettingsService(o.configStore),
		Notifier: o.notifier,

		ConfigStore: o.configStore,
	}, nil
}

// Load reads settings from the TOML config in configDir (or ~/.psychmatch when empty),
// applies PSYCHMATCH_* environment overrides and wires the application.
func Load(configDir string, opts ...Option) (*App, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settings, err := LoadSettings(store)
	if err != nil {
		return nil, err
	}

	return New(*settings, append([]Option{WithConfigStore(store)}, opts...)...)
}

// LoadSettings reads settings from store and overlays the environment.
func LoadSettings(store driven.ConfigStore) (*domain.Settings, error) {
	settings, err := services.NewSettingsService(store).Get()
	if err != nil {
		return nil, err
	}
	if err := env.Apply(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
