package services

import (
	"cmp"
	"context"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService searches the matches view.
type MatchService struct {
	engine driving.ViewEngine
}

// NewMatchService creates a match service.
func NewMatchService(engine driving.ViewEngine) *MatchService {
	return &MatchService{engine: engine}
}

// Search returns the matches including uid that pass every filter,
// ordered by each sort in turn.
//
// A cursor keeps only its last filter, so the uid check and the caller's
// filters are combined into one predicate.
func (s *MatchService) Search(
	ctx context.Context,
	uid string,
	opts driving.MatchSearchOptions,
) ([]domain.MatchRecord, error) {
	if s.engine == nil {
		return nil, domain.ErrNotImplemented
	}
	cursor, err := QueryAs[domain.MatchRecord](ctx, s.engine, views.Matches)
	if err != nil {
		return nil, err
	}

	cursor.Filter(func(m domain.MatchRecord) bool {
		if !m.Includes(uid) {
			return false
		}
		for _, f := range opts.Filters {
			if !f(m) {
				return false
			}
		}
		return true
	})
	for _, sort := range opts.Sorts {
		cursor.Sort(sort.Compare, sort.Reverse)
	}

	matches := cursor.Collect()
	if matches == nil {
		matches = []domain.MatchRecord{}
	}
	return matches, nil
}

// ByOverall orders matches by overall score.
func ByOverall(a, b domain.MatchRecord) int {
	return cmp.Compare(a.Score.Overall, b.Score.Overall)
}
