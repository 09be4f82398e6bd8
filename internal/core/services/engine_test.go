package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// countingView indexes documents with a "flag" field and counts reduce calls.
type countingView struct {
	reduces int
}

func (v *countingView) Map(doc domain.Document) (any, bool) {
	flag, ok := doc.Body["flag"].(bool)
	if !ok || !flag {
		return nil, false
	}
	return doc.Body.String("name"), true
}

func (v *countingView) Reduce(values []any) []any {
	v.reduces++
	return values
}

func newTestEngine(t *testing.T) *ViewEngine {
	t.Helper()
	return NewViewEngine(memory.NewDocumentStore())
}

func TestViewEngine_RegisterEmptyAggregate(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, engine.Register("users", views.UserView{}))

	cursor, err := engine.QueryView(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, 0, cursor.Len())
	assert.Empty(t, cursor.Collect())
}

func TestViewEngine_RegisterDuplicateNameIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.Register("Users", views.UserView{}))
	err := engine.Register("USERS", views.UserView{})

	assert.ErrorIs(t, err, domain.ErrDuplicateViewName)
	assert.Equal(t, []string{"users"}, engine.Views())
}

func TestViewEngine_RegisterNilView(t *testing.T) {
	engine := newTestEngine(t)

	err := engine.Register("users", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestViewEngine_QueryIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.Register("users", views.UserView{}))

	_, err := engine.QueryView(context.Background(), "USERS")
	assert.NoError(t, err)
}

func TestViewEngine_QueryUnknownView(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.QueryView(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrViewNotRegistered)
}

func TestViewEngine_WriteCreatesAndIndexes(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("users", views.UserView{}))

	id, err := engine.Write(ctx, domain.Body{"kind": "user", "email": "t@x.com"}, "")
	require.NoError(t, err)

	doc, err := engine.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "t@x.com", doc.Body.String("email"))

	cursor, err := engine.QueryView(ctx, "users")
	require.NoError(t, err)
	users := cursor.Collect()
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].(domain.Document).ID)
}

func TestViewEngine_WriteUpdatesExistingEntry(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("users", views.UserView{}))

	id, err := engine.Write(ctx, domain.Body{"kind": "user", "email": "t@x.com"}, "")
	require.NoError(t, err)
	same, err := engine.Write(ctx, domain.Body{"kind": "user", "email": "new@x.com"}, id)
	require.NoError(t, err)
	assert.Equal(t, id, same)

	cursor, err := engine.QueryView(ctx, "users")
	require.NoError(t, err)
	users := cursor.Collect()
	require.Len(t, users, 1)
	assert.Equal(t, "new@x.com", users[0].(domain.Document).Body.String("email"))
}

func TestViewEngine_WriteUnknownID(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Write(context.Background(), domain.Body{"kind": "user"}, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViewEngine_WriteInvalidDocument(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Write(context.Background(), nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestViewEngine_AbsentMapLeavesIndexButStillReduces(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	view := &countingView{}
	require.NoError(t, engine.Register("flagged", view))

	_, err := engine.Write(ctx, domain.Body{"flag": true, "name": "a"}, "")
	require.NoError(t, err)
	_, err = engine.Write(ctx, domain.Body{"flag": false, "name": "b"}, "")
	require.NoError(t, err)

	assert.Equal(t, 2, view.reduces)
	cursor, err := engine.QueryView(ctx, "flagged")
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, cursor.Collect())
}

func TestViewEngine_StaleIndexEntriesPersist(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("users", views.UserView{}))

	id, err := engine.Write(ctx, domain.Body{"kind": "user", "email": "t@x.com"}, "")
	require.NoError(t, err)

	// The document stops being a user, but the users view keeps it.
	_, err = engine.Write(ctx, domain.Body{"kind": "archived"}, id)
	require.NoError(t, err)

	cursor, err := engine.QueryView(ctx, "users")
	require.NoError(t, err)
	users := cursor.Collect()
	require.Len(t, users, 1)
	assert.Equal(t, "user", users[0].(domain.Document).Kind())

	doc, err := engine.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "archived", doc.Kind())
}

func TestViewEngine_IndexKeepsFirstInsertionOrder(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("flagged", &countingView{}))

	idA, err := engine.Write(ctx, domain.Body{"flag": true, "name": "a"}, "")
	require.NoError(t, err)
	_, err = engine.Write(ctx, domain.Body{"flag": true, "name": "b"}, "")
	require.NoError(t, err)
	_, err = engine.Write(ctx, domain.Body{"flag": true, "name": "a2"}, idA)
	require.NoError(t, err)

	cursor, err := engine.QueryView(ctx, "flagged")
	require.NoError(t, err)
	assert.Equal(t, []any{"a2", "b"}, cursor.Collect())
}

func TestViewEngine_CursorIsSnapshot(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("flagged", &countingView{}))

	_, err := engine.Write(ctx, domain.Body{"flag": true, "name": "a"}, "")
	require.NoError(t, err)

	before, err := engine.QueryView(ctx, "flagged")
	require.NoError(t, err)

	_, err = engine.Write(ctx, domain.Body{"flag": true, "name": "b"}, "")
	require.NoError(t, err)

	assert.Equal(t, []any{"a"}, before.Collect())

	after, err := engine.QueryView(ctx, "flagged")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, after.Collect())
}

func TestViewEngine_SortingCursorDoesNotAffectEngine(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("flagged", &countingView{}))

	for _, name := range []string{"b", "a"} {
		_, err := engine.Write(ctx, domain.Body{"flag": true, "name": name}, "")
		require.NoError(t, err)
	}

	cursor, err := engine.QueryView(ctx, "flagged")
	require.NoError(t, err)
	domain.SortBy(cursor, func(v any) string { return v.(string) }, false)
	assert.Equal(t, []any{"a", "b"}, cursor.Collect())

	fresh, err := engine.QueryView(ctx, "flagged")
	require.NoError(t, err)
	assert.Equal(t, []any{"b", "a"}, fresh.Collect())
}

func TestViewEngine_EveryViewRefreshedInOrder(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	first, second := &countingView{}, &countingView{}
	require.NoError(t, engine.Register("first", first))
	require.NoError(t, engine.Register("second", second))

	_, err := engine.Write(ctx, domain.Body{"kind": "other"}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.reduces)
	assert.Equal(t, 1, second.reduces)
	assert.Equal(t, []string{"first", "second"}, engine.Views())
}

func TestViewEngine_NilStore(t *testing.T) {
	engine := NewViewEngine(nil)

	_, err := engine.Write(context.Background(), domain.Body{}, "")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = engine.Get(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestViewEngine_ConcurrentWritesAndQueries(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("users", views.UserView{}))
	require.NoError(t, engine.Register("matches", views.NewMatchesView(nil)))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = engine.Write(ctx, domain.Body{"kind": "user", "n": n, "match_requirement": 1}, "")
		}(i)
		go func() {
			defer wg.Done()
			cursor, err := engine.QueryView(ctx, "matches")
			if err != nil {
				return
			}
			for v := range cursor.All() {
				_ = v.(domain.MatchRecord)
			}
		}()
	}
	wg.Wait()

	users, err := QueryAs[domain.Document](ctx, engine, "users")
	require.NoError(t, err)
	matches, err := QueryAs[domain.MatchRecord](ctx, engine, "matches")
	require.NoError(t, err)
	assert.Equal(t, writers, users.Len())
	assert.Equal(t, writers*(writers-1)/2, matches.Len())
}

func TestQueryAs_TypeMismatch(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, engine.Register("users", views.UserView{}))
	_, err := engine.Write(ctx, domain.Body{"kind": "user"}, "")
	require.NoError(t, err)

	_, err = QueryAs[domain.MatchRecord](ctx, engine, "users")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = QueryAs[domain.Document](ctx, engine, "missing")
	assert.ErrorIs(t, err, domain.ErrViewNotRegistered)
}
