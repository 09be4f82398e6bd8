package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractViewName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid view URI", "psychmatch://views/matches", "matches"},
		{"invalid prefix", "file://views/matches", ""},
		{"nested path", "psychmatch://views/matches/extra", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractViewName(tt.uri))
		})
	}
}

func TestServer_handleViewsResource(t *testing.T) {
	server, _ := newTestServer(t)

	result, err := server.handleViewsResource(context.Background(), makeReadResourceRequest("psychmatch://views"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &names))
	assert.Equal(t, []string{"users", "matches", "messages"}, names)
}

func TestServer_handleViewResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)
	a := createUser(t, server, "a@x.com")
	b := createUser(t, server, "b@x.com")

	t.Run("matches aggregate", func(t *testing.T) {
		result, err := server.handleViewResource(ctx, makeReadResourceRequest("psychmatch://views/matches"))
		require.NoError(t, err)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var records []domain.MatchRecord
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &records))
		require.Len(t, records, 1)
		assert.True(t, records[0].Includes(a))
		assert.True(t, records[0].Includes(b))
	})

	t.Run("view names are case-insensitive", func(t *testing.T) {
		result, err := server.handleViewResource(ctx, makeReadResourceRequest("psychmatch://views/USERS"))
		require.NoError(t, err)

		var docs []domain.Document
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &docs))
		assert.Len(t, docs, 2)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := server.handleViewResource(ctx, makeReadResourceRequest("psychmatch://views/nope"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleViewResource(ctx, makeReadResourceRequest("psychmatch://other"))
		assert.Error(t, err)
	})
}
