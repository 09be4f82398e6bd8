package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// documentNamespace scopes content-derived document ids.
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("psychmatch:document"))

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Data is lost when the process exits.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	now       func() time.Time
}

// Option configures a DocumentStore.
type Option func(*DocumentStore)

// WithClock sets the time source used for created/modified timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *DocumentStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore(opts ...Option) *DocumentStore {
	s := &DocumentStore{
		documents: make(map[string]domain.Document),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DocumentID derives the id of a body from its canonical JSON form.
// encoding/json writes map keys in sorted order, so bodies with equal
// content share an id regardless of how they were built.
func DocumentID(body domain.Body) (string, error) {
	if body == nil {
		return "", fmt.Errorf("%w: nil body", domain.ErrInvalidDocument)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return uuid.NewMD5(documentNamespace, data).String(), nil
}

// Create stores body under its content-derived id.
// Bodies with equal content share an id: creating one again replaces the
// stored document with a fresh envelope, so Created is reset.
func (s *DocumentStore) Create(_ context.Context, body domain.Body) (string, error) {
	id, err := DocumentID(body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.documents[id]; exists {
		logger.Warn("document %s already exists, replacing it", id)
	}
	t := s.now()
	s.documents[id] = domain.Document{
		ID:       id,
		Created:  t,
		Modified: t,
		Body:     body.Clone(),
	}
	return id, nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc = doc.Clone()
	return &doc, nil
}

// Update replaces the body of an existing document.
func (s *DocumentStore) Update(_ context.Context, id string, body domain.Body) (*domain.Document, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: nil body", domain.ErrInvalidDocument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	// Modified strictly increases even when the clock does not.
	t := s.now()
	if !t.After(prev.Modified) {
		t = prev.Modified.Add(time.Nanosecond)
	}

	doc := domain.Document{
		ID:       prev.ID,
		Created:  prev.Created,
		Modified: t,
		Body:     body.Clone(),
	}
	s.documents[id] = doc
	doc = doc.Clone()
	return &doc, nil
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
