package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken is returned when the unique index on users.email rejects
	// an insert.
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateSymbol is returned when the unique index on
	// (user_id, symbol) rejects an insert.
	ErrDuplicateSymbol = errors.New("symbol already in portfolio")

	// ErrMissingAPIKey is returned before any upstream call when no provider
	// credential is configured.
	ErrMissingAPIKey = errors.New("groq api key is not configured")
)

// UpstreamError is a non-2xx response from the completion provider received
// before any stream content was relayed.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
