package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/notify"
	"github.com/custodia-labs/psychmatch/internal/app"
	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
)

// mockUserService is a mock implementation of driving.UserService.
type mockUserService struct {
	doc *domain.Document
	err error
}

func (m *mockUserService) Exists(_ context.Context, _ string) (bool, error) {
	return m.doc != nil, m.err
}

func (m *mockUserService) Create(_ context.Context, _ driving.CreateUserRequest) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "uid-1", nil
}

func (m *mockUserService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.doc, m.err
}

func (m *mockUserService) Verify(_ context.Context, _ string) error {
	return m.err
}

// newTestServer wires a server to a fresh application.
func newTestServer(t *testing.T) (*Server, *app.App) {
	t.Helper()
	a, err := app.New(domain.DefaultSettings(), app.WithNotifier(notify.NewOutbox()))
	require.NoError(t, err)

	server, err := NewServer(&Ports{
		Users:    a.Users,
		Messages: a.Messages,
		Matches:  a.Matches,
		Engine:   a.Engine,
	})
	require.NoError(t, err)
	return server, a
}
