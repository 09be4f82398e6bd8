package mcp

import (
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Users registers and looks up users.
	Users driving.UserService

	// Messages sends messages and reads conversations.
	Messages driving.MessageService

	// Matches searches the matches view.
	Matches driving.MatchService

	// Engine backs the view resources.
	Engine driving.ViewEngine
}

// Validate ensures all required ports are set.
// Tools and resources whose port is nil are not registered.
func (p *Ports) Validate() error {
	if p == nil || p.Users == nil {
		return ErrMissingUserService
	}
	return nil
}
