package views

import "github.com/custodia-labs/psychmatch/internal/core/domain"

// UserView indexes user documents and aggregates them unchanged.
type UserView struct {
	Base
}

// Map passes through documents of kind "user".
func (UserView) Map(doc domain.Document) (any, bool) {
	if doc.Kind() != domain.KindUser {
		return nil, false
	}
	return doc, true
}
