package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// mockNotifier records notifications.
type mockNotifier struct {
	mu   sync.Mutex
	sent []notification
	err  error
}

type notification struct {
	to, subject, body string
}

func (n *mockNotifier) Notify(_ context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification{to: to, subject: subject, body: body})
	return nil
}

var errNotifierDown = errors.New("smtp down")

// tickingClock advances by one second on every call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

// newDefaultEngine creates an engine with the built-in views installed.
func newDefaultEngine(t *testing.T, settings domain.Settings) *ViewEngine {
	t.Helper()
	engine := NewViewEngine(memory.NewDocumentStore())
	require.NoError(t, views.Defaults().Install(engine, settings))
	return engine
}
