package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/core/services"
)

// CreateUserInput is the input schema for the create_user tool.
type CreateUserInput struct {
	Email    string   `json:"email" jsonschema:"the user's email address"`
	Username string   `json:"username" jsonschema:"display name"`
	Hobbies  []string `json:"hobbies,omitempty" jsonschema:"hobbies used by the shared_hobbies scoring aspect"`
}

// UserIDInput identifies a user.
type UserIDInput struct {
	UID string `json:"uid" jsonschema:"the user id"`
}

// IDOutput returns the id of a written document.
type IDOutput struct {
	ID string `json:"id"`
}

// UserOutput wraps a user projection.
type UserOutput struct {
	User domain.User `json:"user"`
}

// SearchMatchesInput is the input schema for the search_matches tool.
type SearchMatchesInput struct {
	UID        string  `json:"uid" jsonschema:"the user to find matches for"`
	MinOverall float64 `json:"min_overall,omitempty" jsonschema:"only return matches scoring at least this much"`
	Limit      int     `json:"limit,omitempty" jsonschema:"maximum number of matches to return (default all)"`
}

// MatchOutput is a single match from the caller's point of view.
type MatchOutput struct {
	Partner string             `json:"partner"`
	Overall float64            `json:"overall"`
	Aspects map[string]float64 `json:"aspects,omitempty"`
}

// SearchMatchesOutput is the output schema for the search_matches tool.
type SearchMatchesOutput struct {
	Matches []MatchOutput `json:"matches"`
	Count   int           `json:"count"`
}

// SendMessageInput is the input schema for the send_message tool.
type SendMessageInput struct {
	From    string `json:"from" jsonschema:"sender user id"`
	To      string `json:"to" jsonschema:"recipient user id"`
	Content string `json:"content" jsonschema:"message text"`
}

// ListConversationsOutput is the output schema for the list_conversations tool.
type ListConversationsOutput struct {
	Partners []string `json:"partners"`
	Count    int      `json:"count"`
}

// ConversationInput is the input schema for the get_conversation tool.
type ConversationInput struct {
	UID     string `json:"uid" jsonschema:"one participant"`
	Partner string `json:"partner" jsonschema:"the other participant"`
}

// ConversationOutput wraps a conversation.
type ConversationOutput struct {
	Conversation domain.Conversation `json:"conversation"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_user",
		Description: "Register a new, unverified user",
	}, s.handleCreateUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_user",
		Description: "Look up a user by id",
	}, s.handleGetUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "verify_user",
		Description: "Mark a user's email as confirmed",
	}, s.handleVerifyUser)

	if s.ports.Matches != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_matches",
			Description: "Find the matches of a user, best first",
		}, s.handleSearchMatches)
	}

	if s.ports.Messages != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "send_message",
			Description: "Send a message from one user to another",
		}, s.handleSendMessage)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_conversations",
			Description: "List the users a user has exchanged messages with",
		}, s.handleListConversations)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_conversation",
			Description: "Read the messages between two users",
		}, s.handleGetConversation)
	}
}

func (s *Server) handleCreateUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateUserInput,
) (*mcp.CallToolResult, IDOutput, error) {
	uid, err := s.ports.Users.Create(ctx, driving.CreateUserRequest{
		Email:    input.Email,
		Username: input.Username,
		Hobbies:  input.Hobbies,
	})
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: uid}, nil
}

func (s *Server) handleGetUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UserIDInput,
) (*mcp.CallToolResult, UserOutput, error) {
	doc, err := s.ports.Users.Get(ctx, input.UID)
	if err != nil {
		return nil, UserOutput{}, err
	}
	return nil, UserOutput{User: domain.UserFromDocument(*doc)}, nil
}

func (s *Server) handleVerifyUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UserIDInput,
) (*mcp.CallToolResult, UserOutput, error) {
	if err := s.ports.Users.Verify(ctx, input.UID); err != nil {
		return nil, UserOutput{}, err
	}
	return s.handleGetUser(ctx, nil, input)
}

func (s *Server) handleSearchMatches(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchMatchesInput,
) (*mcp.CallToolResult, SearchMatchesOutput, error) {
	opts := driving.MatchSearchOptions{
		Sorts: []driving.MatchSort{{Compare: services.ByOverall, Reverse: true}},
	}
	if input.MinOverall > 0 {
		opts.Filters = append(opts.Filters, func(m domain.MatchRecord) bool {
			return m.Score.Overall >= input.MinOverall
		})
	}

	records, err := s.ports.Matches.Search(ctx, input.UID, opts)
	if err != nil {
		return nil, SearchMatchesOutput{}, err
	}
	if input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}

	output := SearchMatchesOutput{
		Matches: make([]MatchOutput, len(records)),
		Count:   len(records),
	}
	for i, m := range records {
		output.Matches[i] = MatchOutput{
			Partner: m.Partner(input.UID),
			Overall: m.Score.Overall,
			Aspects: m.Score.Aspects,
		}
	}
	return nil, output, nil
}

func (s *Server) handleSendMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendMessageInput,
) (*mcp.CallToolResult, IDOutput, error) {
	id, err := s.ports.Messages.Send(ctx, input.From, input.To, input.Content)
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: id}, nil
}

func (s *Server) handleListConversations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UserIDInput,
) (*mcp.CallToolResult, ListConversationsOutput, error) {
	convs, err := s.ports.Messages.Conversations(ctx, input.UID)
	if err != nil {
		return nil, ListConversationsOutput{}, err
	}

	output := ListConversationsOutput{
		Partners: make([]string, len(convs)),
		Count:    len(convs),
	}
	for i, c := range convs {
		output.Partners[i] = partnerOf(c, input.UID)
	}
	return nil, output, nil
}

func (s *Server) handleGetConversation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConversationInput,
) (*mcp.CallToolResult, ConversationOutput, error) {
	conv, err := s.ports.Messages.Conversation(ctx, input.UID, input.Partner)
	if err != nil {
		return nil, ConversationOutput{}, err
	}
	return nil, ConversationOutput{Conversation: *conv}, nil
}

func partnerOf(c domain.Conversation, uid string) string {
	if c.Participants[0] == uid {
		return c.Participants[1]
	}
	return c.Participants[0]
}
