package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the user-visible failure taxonomy. Call sites branch
// on these with errors.Is and render the matching notice.
var (
	// ErrAuthRequired means the action needs a logged-in session.
	ErrAuthRequired = errors.New("login required")
	// ErrNotFound means the resource no longer exists on the backend.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a duplicate resource (id, nickname, second review).
	ErrConflict = errors.New("already exists")
	// ErrUnavailable wraps transport-level failures; local state is unchanged.
	ErrUnavailable = errors.New("backend unreachable")
)

// StatusError is returned for non-2xx responses that do not map to a
// sentinel error.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}
