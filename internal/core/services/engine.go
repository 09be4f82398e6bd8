package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// Ensure ViewEngine implements the interface.
var _ driving.ViewEngine = (*ViewEngine)(nil)

// ViewEngine binds views to a single document store.
//
// Every write persists the document, then feeds it through each view's map
// step in registration order and recomputes that view's aggregate over its
// whole index. The whole sequence runs under one exclusive lock, so readers
// see each aggregate either entirely before or entirely after a write.
type ViewEngine struct {
	mu    sync.RWMutex
	store driven.DocumentStore
	views []*materializedView
	byKey map[string]*materializedView
}

// materializedView is a registered view with its index and aggregate.
type materializedView struct {
	name      string
	view      domain.View
	index     *viewIndex
	aggregate []any
}

// viewIndex maps document ids to their latest present map result.
// Ids keep the position of their first insertion.
type viewIndex struct {
	ids    []string
	values map[string]any
}

func newViewIndex() *viewIndex {
	return &viewIndex{values: make(map[string]any)}
}

func (x *viewIndex) put(id string, value any) {
	if _, ok := x.values[id]; !ok {
		x.ids = append(x.ids, id)
	}
	x.values[id] = value
}

func (x *viewIndex) list() []any {
	out := make([]any, len(x.ids))
	for i, id := range x.ids {
		out[i] = x.values[id]
	}
	return out
}

// NewViewEngine creates an engine over store with no views registered.
func NewViewEngine(store driven.DocumentStore) *ViewEngine {
	return &ViewEngine{
		store: store,
		byKey: make(map[string]*materializedView),
	}
}

// Register adds view under the lowercased name with an empty index and
// an empty aggregate.
func (e *ViewEngine) Register(name string, view domain.View) error {
	if view == nil {
		return fmt.Errorf("register view %q: %w: nil view", name, domain.ErrInvalidInput)
	}
	key := domain.NormalizeViewName(name)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.byKey[key]; exists {
		return fmt.Errorf("register view %q: %w", key, domain.ErrDuplicateViewName)
	}
	mv := &materializedView{
		name:      key,
		view:      view,
		index:     newViewIndex(),
		aggregate: []any{},
	}
	e.views = append(e.views, mv)
	e.byKey[key] = mv
	logger.Debug("registered view %q", key)
	return nil
}

// Write creates or updates a document and refreshes every view.
func (e *ViewEngine) Write(ctx context.Context, body domain.Body, id string) (string, error) {
	if e.store == nil {
		return "", domain.ErrNotImplemented
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if id == "" {
		created, err := e.store.Create(ctx, body)
		if err != nil {
			return "", fmt.Errorf("create document: %w", err)
		}
		id = created
	} else if _, err := e.store.Update(ctx, id, body); err != nil {
		return "", fmt.Errorf("update document %s: %w", id, err)
	}

	doc, err := e.store.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get document %s: %w", id, err)
	}
	logger.Debug("wrote document %s (kind=%q)", id, doc.Kind())

	for _, mv := range e.views {
		// A document that no longer maps keeps its previous index entry.
		if value, ok := mv.view.Map(doc.Clone()); ok {
			mv.index.put(doc.ID, value)
		}
		mv.aggregate = mv.view.Reduce(mv.index.list())
		logger.Debug("refreshed view %q: %d indexed, %d aggregated",
			mv.name, len(mv.index.ids), len(mv.aggregate))
	}

	return id, nil
}

// QueryView returns a cursor over a copy of the view's current aggregate.
func (e *ViewEngine) QueryView(_ context.Context, name string) (*domain.Cursor[any], error) {
	key := domain.NormalizeViewName(name)

	e.mu.RLock()
	defer e.mu.RUnlock()

	mv, ok := e.byKey[key]
	if !ok {
		return nil, fmt.Errorf("query view %q: %w", key, domain.ErrViewNotRegistered)
	}
	return domain.NewCursor(slices.Clone(mv.aggregate)), nil
}

// Get retrieves a stored document.
func (e *ViewEngine) Get(ctx context.Context, id string) (*domain.Document, error) {
	if e.store == nil {
		return nil, domain.ErrNotImplemented
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Get(ctx, id)
}

// Views returns registered view names in registration order.
func (e *ViewEngine) Views() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, len(e.views))
	for i, mv := range e.views {
		names[i] = mv.name
	}
	return names
}
