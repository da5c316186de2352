package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMissingBody indicates an SMS record without any text body; the message
// is skipped, the run continues.
var ErrMissingBody = errors.New("message has no body")

// ErrPersistence indicates that a store sink rejected a write; the affected
// message is counted as an error, the run continues.
var ErrPersistence = errors.New("persistence failure")

// ErrFatalInput indicates the source export could not be read or parsed at
// all. This is the only error that aborts a whole ingestion run.
var ErrFatalInput = errors.New("unreadable input source")

// AppError carries a status code and context message around a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
