package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/logger"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// Ensure MessageService implements the interface.
var _ driving.MessageService = (*MessageService)(nil)

// MessageService stores messages between existing users.
type MessageService struct {
	engine driving.ViewEngine
	users  driving.UserService
	now    func() time.Time
}

// NewMessageService creates a message service.
func NewMessageService(engine driving.ViewEngine, users driving.UserService) *MessageService {
	return &MessageService{
		engine: engine,
		users:  users,
		now:    time.Now,
	}
}

// WithClock sets the time source used to timestamp messages.
func (s *MessageService) WithClock(now func() time.Time) *MessageService {
	s.now = now
	return s
}

// Send writes a message after checking that both users exist.
func (s *MessageService) Send(ctx context.Context, from, to, content string) (string, error) {
	if s.engine == nil || s.users == nil {
		return "", domain.ErrNotImplemented
	}
	for _, uid := range []string{from, to} {
		ok, err := s.users.Exists(ctx, uid)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownParticipant, uid)
		}
	}

	id, err := s.engine.Write(ctx, domain.Body{
		domain.FieldKind:      domain.KindMessage,
		domain.FieldContent:   content,
		domain.FieldFrom:      from,
		domain.FieldTo:        to,
		domain.FieldTimestamp: s.now().UTC(),
	}, "")
	if err != nil {
		return "", err
	}
	logger.Debug("message %s sent from %s to %s", id, from, to)
	return id, nil
}

// Conversations returns every conversation uid takes part in.
func (s *MessageService) Conversations(ctx context.Context, uid string) ([]domain.Conversation, error) {
	cursor, err := s.query(ctx)
	if err != nil {
		return nil, err
	}
	convs := cursor.Filter(func(c domain.Conversation) bool { return c.Includes(uid) }).Collect()
	if convs == nil {
		convs = []domain.Conversation{}
	}
	return convs, nil
}

// Conversation returns the conversation between uid and partner.
func (s *MessageService) Conversation(ctx context.Context, uid, partner string) (*domain.Conversation, error) {
	cursor, err := s.query(ctx)
	if err != nil {
		return nil, err
	}
	conv, ok := cursor.Filter(func(c domain.Conversation) bool { return c.Between(uid, partner) }).First()
	if !ok {
		return nil, fmt.Errorf("conversation between %s and %s: %w", uid, partner, domain.ErrNotFound)
	}
	return &conv, nil
}

func (s *MessageService) query(ctx context.Context) (*domain.Cursor[domain.Conversation], error) {
	if s.engine == nil {
		return nil, domain.ErrNotImplemented
	}
	return QueryAs[domain.Conversation](ctx, s.engine, views.Messages)
}
