package views

import (
	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// MatchesView pairs users off and keeps the pairs whose score meets the
// higher of the two users' match requirements.
// It indexes the same documents as UserView.
type MatchesView struct {
	UserView
	scorer *Scorer
}

// NewMatchesView creates a matches view scored by scorer.
// A nil scorer scores with the baseline aspect only.
func NewMatchesView(scorer *Scorer) *MatchesView {
	if scorer == nil {
		scorer = NewScorer(Baseline())
	}
	return &MatchesView{scorer: scorer}
}

// Reduce enumerates every unordered pair in index order.
func (v *MatchesView) Reduce(values []any) []any {
	matches := v.Matches(documents(values))
	out := make([]any, len(matches))
	for i := range matches {
		out[i] = matches[i]
	}
	return out
}

// Matches returns the qualifying pairs of users, in combination order.
func (v *MatchesView) Matches(users []domain.Document) []domain.MatchRecord {
	matches := []domain.MatchRecord{}
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			a, b := users[i], users[j]
			score := v.scorer.Score(a, b)
			if score.Overall >= max(requirement(a), requirement(b)) {
				matches = append(matches, domain.MatchRecord{A: a.ID, B: b.ID, Score: score})
			}
		}
	}
	return matches
}

// requirement is the user's match_requirement. A missing or
// non-numeric requirement is 0.
func requirement(user domain.Document) float64 {
	req, _ := user.Body.Number(domain.FieldMatchRequirement)
	return req
}
