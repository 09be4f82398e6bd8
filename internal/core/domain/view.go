package domain

import "strings"

// View is a map/reduce capability from which a materialized view is derived.
//
// Map classifies or transforms one document. The boolean result reports
// whether the document produced a value; absent results leave the view's
// index untouched.
//
// Reduce folds every indexed value, in index order, into the view's
// aggregate. It is recomputed in full after every write.
//
// Views hold no mutable state.
type View interface {
	Map(doc Document) (any, bool)
	Reduce(values []any) []any
}

// NormalizeViewName returns the canonical form of a view name.
// View names are case-insensitive.
func NormalizeViewName(name string) string {
	return strings.ToLower(name)
}
