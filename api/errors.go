// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-buf library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrNilArgument       = fmt.Errorf("nil argument")
	ErrInconsistentOrder = fmt.Errorf("inconsistent byte order")
	ErrLengthOverflow    = fmt.Errorf("total length overflows int")
	ErrNegativeLength    = fmt.Errorf("negative length")
	ErrReadOnly          = fmt.Errorf("buffer is read-only")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeInconsistentOrder
	ErrCodeOverflow
	ErrCodeNegativeLength
	ErrCodeReadOnly
)

// Error represents a structured error with code and context. Fallible
// construction paths return it so callers can inspect the offending
// values (byte orders, accumulated lengths) without parsing messages.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel, so errors.Is matches a
// structured error and the bare sentinel interchangeably.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrNilArgument
	case ErrCodeInconsistentOrder:
		return ErrInconsistentOrder
	case ErrCodeOverflow:
		return ErrLengthOverflow
	case ErrCodeNegativeLength:
		return ErrNegativeLength
	case ErrCodeReadOnly:
		return ErrReadOnly
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
