package driving

import (
	"context"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// MatchService searches the matches view.
type MatchService interface {
	// Search returns the matches that include uid.
	Search(ctx context.Context, uid string, opts MatchSearchOptions) ([]domain.MatchRecord, error)
}

// MatchSearchOptions refine a match search.
type MatchSearchOptions struct {
	// Filters must all accept a record for it to be returned.
	Filters []func(domain.MatchRecord) bool

	// Sorts are applied in order.
	Sorts []MatchSort
}

// MatchSort orders match records.
type MatchSort struct {
	Compare func(a, b domain.MatchRecord) int
	Reverse bool
}
