package views

import (
	"fmt"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
)

// Built-in view names.
const (
	Users    = "users"
	Matches  = "matches"
	Messages = "messages"
)

// BuilderFunc creates a view from the application settings.
type BuilderFunc func(settings domain.Settings) (domain.View, error)

// Registry maps view names to their builders.
// Names keep their registration order, which is also the order views are
// installed into an engine.
type Registry struct {
	names    []string
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty view registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a view builder. Registering a name twice replaces the
// builder but keeps the original position.
func (r *Registry) Register(name string, builder BuilderFunc) {
	name = domain.NormalizeViewName(name)
	if _, ok := r.builders[name]; !ok {
		r.names = append(r.names, name)
	}
	r.builders[name] = builder
}

// Build creates a view by name.
func (r *Registry) Build(name string, settings domain.Settings) (domain.View, error) {
	builder, ok := r.builders[domain.NormalizeViewName(name)]
	if !ok {
		return nil, fmt.Errorf("unknown view: %s", name)
	}
	return builder(settings)
}

// Has returns true if a view with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[domain.NormalizeViewName(name)]
	return ok
}

// Names returns all registered view names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Install builds every registered view and registers it with engine.
func (r *Registry) Install(engine driving.ViewEngine, settings domain.Settings) error {
	for _, name := range r.names {
		view, err := r.builders[name](settings)
		if err != nil {
			return fmt.Errorf("building view %s: %w", name, err)
		}
		if err := engine.Register(name, view); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefaults registers the users, matches and messages views.
func RegisterDefaults(r *Registry) {
	r.Register(Users, buildUsers)
	r.Register(Matches, buildMatches)
	r.Register(Messages, buildMessages)
}

// Defaults returns a registry holding the built-in views.
func Defaults() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func buildUsers(domain.Settings) (domain.View, error) {
	return UserView{}, nil
}

// buildMatches scores with settings.Matching.Aspects, or the baseline
// aspect when none are configured.
func buildMatches(settings domain.Settings) (domain.View, error) {
	names := settings.Matching.Aspects
	if len(names) == 0 {
		names = []string{domain.DefaultAspect}
	}
	aspects, err := AspectsByName(names)
	if err != nil {
		return nil, err
	}
	return NewMatchesView(NewScorer(aspects...)), nil
}

func buildMessages(domain.Settings) (domain.View, error) {
	return MessageView{}, nil
}
