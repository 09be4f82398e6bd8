package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for psychmatch resources.
	uriScheme = "psychmatch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Engine == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "views",
		Name:        "views",
		Description: "Names of the registered views",
		MIMEType:    "application/json",
	}, s.handleViewsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "views/{name}",
		Name:        "view-aggregate",
		Description: "Current aggregate of a view",
		MIMEType:    "application/json",
	}, s.handleViewResource)
}

// handleViewsResource lists the registered views.
func (s *Server) handleViewsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Engine.Views())
}

// handleViewResource returns a snapshot of a view's aggregate.
func (s *Server) handleViewResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractViewName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	cursor, err := s.ports.Engine.QueryView(ctx, name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, cursor.Collect())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractViewName extracts the view name from a URI like psychmatch://views/{name}.
func extractViewName(uri string) string {
	const prefix = uriScheme + "views/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
