// Package common defines sentinel errors and small helpers shared by the
// SMRC client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Session errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSession    = errors.New("no active session")

	// ErrCorruptSession is returned when a persisted session record cannot be read back.
	ErrCorruptSession = errors.New("corrupt session record")
)
