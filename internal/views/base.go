package views

import "github.com/custodia-labs/psychmatch/internal/core/domain"

// Base provides the identity reduce step.
// Embed it in views whose aggregate is simply their index.
type Base struct{}

// Reduce returns values unchanged.
func (Base) Reduce(values []any) []any {
	return values
}

// MapFunc adapts a map function into a view with the identity reduce step.
type MapFunc func(doc domain.Document) (any, bool)

// Map calls f.
func (f MapFunc) Map(doc domain.Document) (any, bool) {
	return f(doc)
}

// Reduce returns values unchanged.
func (MapFunc) Reduce(values []any) []any {
	return values
}

// OfKind returns a view indexing every document whose kind is kind.
func OfKind(kind string) domain.View {
	return MapFunc(func(doc domain.Document) (any, bool) {
		if doc.Kind() != kind {
			return nil, false
		}
		return doc, true
	})
}

// documents keeps the domain.Document values in values.
func documents(values []any) []domain.Document {
	docs := make([]domain.Document, 0, len(values))
	for _, v := range values {
		if doc, ok := v.(domain.Document); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}
