// Package mcp provides an MCP (Model Context Protocol) server adapter for psychmatch.
// It lets AI assistants register users, search matches and exchange messages.
package mcp

import "errors"

// ErrMissingUserService is returned when the user service is not provided.
var ErrMissingUserService = errors.New("mcp: user service is required")
