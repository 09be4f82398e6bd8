package domain

import (
	"slices"
	"time"
)

// Message is a single entry in a conversation.
type Message struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
}

// Conversation groups every message exchanged between two users,
// ordered by timestamp.
type Conversation struct {
	// Participants is the canonical (lower, higher) pair of user ids.
	Participants [2]string `json:"participants"`

	Messages []Message `json:"messages"`
}

// ConversationKey returns the canonical participant pair for a and b.
func ConversationKey(a, b string) [2]string {
	return [2]string{min(a, b), max(a, b)}
}

// Includes reports whether uid takes part in the conversation.
func (c Conversation) Includes(uid string) bool {
	return slices.Contains(c.Participants[:], uid)
}

// Between reports whether the conversation is between a and b.
func (c Conversation) Between(a, b string) bool {
	return c.Participants == ConversationKey(a, b)
}
