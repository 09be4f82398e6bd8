package driving

import (
	"context"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// MessageService sends messages and reads conversations.
type MessageService interface {
	// Send stores a message from one user to another and returns its id.
	// Returns domain.ErrUnknownParticipant if either user does not exist.
	Send(ctx context.Context, from, to, content string) (string, error)

	// Conversations returns every conversation uid takes part in.
	Conversations(ctx context.Context, uid string) ([]domain.Conversation, error)

	// Conversation returns the conversation between uid and partner.
	// Returns domain.ErrNotFound if they have not exchanged messages.
	Conversation(ctx context.Context, uid, partner string) (*domain.Conversation, error)
}
