package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available.
	ErrNotImplemented = errors.New("not implemented")

	// Store and view errors.

	// ErrInvalidDocument indicates a body that is not a serializable key-value mapping.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrDuplicateViewName indicates a view with the same normalised name is registered.
	ErrDuplicateViewName = errors.New("duplicate view name")

	// ErrViewNotRegistered indicates a query against an unknown view.
	ErrViewNotRegistered = errors.New("view not registered")

	// Orchestration errors.

	// ErrDuplicateEmail indicates a user with the same email already exists.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrUnknownParticipant indicates a message sender or receiver does not exist.
	ErrUnknownParticipant = errors.New("unknown participant")
)
