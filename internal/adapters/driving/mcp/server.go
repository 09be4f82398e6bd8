package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/psychmatch/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the matchmaking services as MCP tools and the view
// engine's aggregates as resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "psychmatch",
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: instructions(ports),
		HasResources: ports.Engine != nil,
		InitializedHandler: func(_ context.Context, req *mcp.InitializedRequest) {
			logger.Debug("mcp session %s initialized", req.Session.ID())
		},
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells clients which views back the resources.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("psychmatch registers users, searches their matches and relays messages. ")
	b.WriteString("Tools take user ids as returned by create_user.")
	if ports.Engine == nil {
		return b.String()
	}
	fmt.Fprintf(&b, " Views: %s. Read %sviews/{name} for a view's current aggregate.",
		strings.Join(ports.Engine.Views(), ", "), uriScheme)
	return b.String()
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves MCP over HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Warn("mcp http shutdown: %v", err)
		}
	}()

	logger.Debug("mcp server on http %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
