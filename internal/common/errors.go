// Package common defines shared constants and sentinel errors used across
// the LevelUp client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors. Remote and local login failures collapse into this one
	// value; the caller is not told which side rejected the credentials.
	ErrInvalidCredentials = errors.New("no matching user")

	// Registration errors.
	ErrEmailTaken = errors.New("email already registered")

	// Session errors.
	ErrNoSession = errors.New("no active session")
)
