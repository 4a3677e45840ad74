// api/errors/grant_errors.go
package errors

import "errors"

var (
	ErrInvalidGrantDuration = errors.New("grant duration must be positive")
	ErrInvalidGrantData     = errors.New("invalid grant data")
)
