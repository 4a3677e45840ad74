// api/errors/access_errors.go
package errors

import "errors"

var (
	// ErrAccessDenied is the terminal denial from the access decision
	// engine: the caller's role loses against the file's sensitivity tier
	// (or the ownership rule, for delete) and no active grant overrides it.
	ErrAccessDenied = errors.New("access denied")

	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidSensitivity = errors.New("invalid sensitivity")
	ErrInvalidAction      = errors.New("invalid action")
	ErrUnauthorized       = errors.New("unauthorized")
)
