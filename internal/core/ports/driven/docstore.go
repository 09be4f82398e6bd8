package driven

import (
	"context"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// DocumentStore owns the mapping from document id to document envelope.
// There is no delete operation.
type DocumentStore interface {
	// Create stores body under an id derived from its content and returns the id.
	// Returns domain.ErrInvalidDocument if body is nil or cannot be serialised.
	Create(ctx context.Context, body domain.Body) (string, error)

	// Get retrieves a document by id.
	// Returns domain.ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Update replaces the body of an existing document, keeping its id and
	// creation time. Returns domain.ErrNotFound if the id is unknown.
	Update(ctx context.Context, id string, body domain.Body) (*domain.Document, error)
}
