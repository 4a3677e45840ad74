// api/errors/file_errors.go
package errors

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFileData = errors.New("invalid file data")
	ErrNoFileUploaded  = errors.New("no file uploaded")

	ErrDatabaseOperation = errors.New("database operation failed")
	ErrStorageFailure    = errors.New("storage backend unavailable")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
