package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Sift error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrUnparseableQuery ErrorCode = "UNPARSEABLE_QUERY" // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrAlreadyExists    ErrorCode = "ALREADY_EXISTS"    // 409
	ErrValueTooLarge    ErrorCode = "VALUE_TOO_LARGE"   // 413
	ErrInvalidType      ErrorCode = "INVALID_TYPE"      // 422
	ErrCancelled        ErrorCode = "CANCELLED"         // 499
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// SiftError represents a structured error with code, status, and details.
type SiftError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SiftError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SiftError {
	return &SiftError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnparseableQuery creates a 400 error when no phrase rule matched a
// natural-language query.
func NewUnparseableQuery(query string) *SiftError {
	return &SiftError{
		Code:    ErrUnparseableQuery,
		Status:  400,
		Message: "unable to parse natural language query",
		Details: map[string]any{"query": query},
	}
}

// NewNotFound creates a 404 error for when a string has not been analyzed.
func NewNotFound(value string) *SiftError {
	return &SiftError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "string does not exist",
		Details: map[string]any{"value": value},
	}
}

// NewAlreadyExists creates a 409 error for a value that is already stored.
func NewAlreadyExists(value string) *SiftError {
	return &SiftError{
		Code:    ErrAlreadyExists,
		Status:  409,
		Message: "string already exists",
		Details: map[string]any{"value": value},
	}
}

// NewValueTooLarge creates a 413 error when a value exceeds the configured limit.
func NewValueTooLarge(max, actual int) *SiftError {
	return &SiftError{
		Code:    ErrValueTooLarge,
		Status:  413,
		Message: fmt.Sprintf("value exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewInvalidType creates a 422 error when a field has the wrong type.
func NewInvalidType(field, want string) *SiftError {
	return &SiftError{
		Code:    ErrInvalidType,
		Status:  422,
		Message: fmt.Sprintf("%q must be a %s", field, want),
		Details: map[string]any{"field": field},
	}
}

// NewCancelled creates an error for operations aborted by context cancellation.
func NewCancelled(op string) *SiftError {
	return &SiftError{
		Code:    ErrCancelled,
		Status:  499,
		Message: fmt.Sprintf("%s cancelled", op),
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the cause is kept in Details for logging.
func NewInternal(err error) *SiftError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &SiftError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error (or anything it wraps) is a SiftError with the given code.
func Is(err error, code ErrorCode) bool {
	var sErr *SiftError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}

// As returns the SiftError in err's chain, converting anything else to INTERNAL.
func As(err error) *SiftError {
	var sErr *SiftError
	if stderrors.As(err, &sErr) {
		return sErr
	}
	return NewInternal(err)
}
