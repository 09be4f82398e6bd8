package driving

import (
	"context"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// UserService registers and looks up users.
type UserService interface {
	// Exists reports whether a user with the given id is in the users view.
	Exists(ctx context.Context, uid string) (bool, error)

	// Create registers a new, unverified user and returns its id.
	// Returns domain.ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, req CreateUserRequest) (string, error)

	// Get returns the user's document.
	Get(ctx context.Context, uid string) (*domain.Document, error)

	// Verify marks the user's email as confirmed.
	Verify(ctx context.Context, uid string) error
}

// CreateUserRequest holds the fields a new user supplies.
type CreateUserRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Username string   `json:"username" validate:"required"`
	Hobbies  []string `json:"hobbies,omitempty"`
}
