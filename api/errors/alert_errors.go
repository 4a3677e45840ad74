// api/errors/alert_errors.go
package errors

import "errors"

var (
	ErrAlertNotFound    = errors.New("alert not found")
	ErrInvalidAlertData = errors.New("invalid alert data")
)
