package views

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// Aspect contributes one named component of a match score.
type Aspect struct {
	Name  string
	Score func(a, b domain.Document) float64
}

// Scorer sums aspect contributions into an overall score.
type Scorer struct {
	aspects []Aspect
}

// NewScorer creates a scorer over aspects, applied in order.
func NewScorer(aspects ...Aspect) *Scorer {
	return &Scorer{aspects: aspects}
}

// Score rates users a and b.
func (s *Scorer) Score(a, b domain.Document) domain.Score {
	score := domain.Score{Aspects: make(map[string]float64, len(s.aspects))}
	for _, aspect := range s.aspects {
		contribution := aspect.Score(a, b)
		score.Aspects[aspect.Name] += contribution
		score.Overall += contribution
	}
	return score
}

// Aspects returns the scorer's aspect names, in order.
func (s *Scorer) Aspects() []string {
	names := make([]string, len(s.aspects))
	for i, a := range s.aspects {
		names[i] = a.Name
	}
	return names
}

// Baseline contributes 1 to every pair, reported as test_property.
func Baseline() Aspect {
	return Aspect{
		Name:  "test_property",
		Score: func(_, _ domain.Document) float64 { return 1 },
	}
}

// SharedHobbies contributes 1 for each hobby both users list.
func SharedHobbies() Aspect {
	return Aspect{
		Name: "shared_hobbies",
		Score: func(a, b domain.Document) float64 {
			theirs := b.Body.Strings(domain.FieldHobbies)
			seen := make(map[string]bool)
			var shared float64
			for _, h := range a.Body.Strings(domain.FieldHobbies) {
				if !seen[h] && slices.Contains(theirs, h) {
					shared++
				}
				seen[h] = true
			}
			return shared
		},
	}
}

var builtinAspects = map[string]func() Aspect{
	"test_property":  Baseline,
	"shared_hobbies": SharedHobbies,
}

// AspectsByName resolves built-in aspects.
// Returns domain.ErrInvalidInput for unknown names.
func AspectsByName(names []string) ([]Aspect, error) {
	aspects := make([]Aspect, 0, len(names))
	for _, name := range names {
		build, ok := builtinAspects[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown scoring aspect %q", domain.ErrInvalidInput, name)
		}
		aspects = append(aspects, build())
	}
	return aspects, nil
}
