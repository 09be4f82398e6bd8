package driving

import (
	"context"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// ViewEngine binds named views to a document store and keeps their
// aggregates current after every write.
type ViewEngine interface {
	// Register adds a view under a case-insensitive name.
	// Returns domain.ErrDuplicateViewName if the name is taken.
	Register(name string, view domain.View) error

	// Write creates a document when id is empty, or updates it otherwise,
	// then refreshes every registered view. Returns the document id.
	Write(ctx context.Context, body domain.Body, id string) (string, error)

	// QueryView returns a cursor over a snapshot of the view's aggregate.
	// Returns domain.ErrViewNotRegistered for unknown names.
	QueryView(ctx context.Context, name string) (*domain.Cursor[any], error)

	// Get retrieves a stored document.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Views returns the registered view names in registration order.
	Views() []string
}
