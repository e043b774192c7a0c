package errors

import "fmt"

// ErrorCode represents a zotter error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrInternal       ErrorCode = "INTERNAL"
)

// Collection names used in NotFound details.
const (
	CollectionActive = "active"
	CollectionTrash  = "trash"
)

// ZotterError represents a structured error with code and details.
type ZotterError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ZotterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates an error for invalid request parameters.
func NewInvalidRequest(msg string) *ZotterError {
	return &ZotterError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewNotFound creates an error for an index outside the collection's range.
func NewNotFound(collection string, index int) *ZotterError {
	subject := "note"
	if collection == CollectionTrash {
		subject = "trash item"
	}
	return &ZotterError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s %d not found", subject, index),
		Details: map[string]any{"collection": collection, "index": index},
	}
}

// NewInternal wraps an unexpected failure, typically a failed write.
func NewInternal(err error) *ZotterError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ZotterError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if an error is a ZotterError with the given code.
func Is(err error, code ErrorCode) bool {
	if zErr, ok := err.(*ZotterError); ok {
		return zErr.Code == code
	}
	return false
}
