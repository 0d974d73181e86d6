package jwtauth

import "fmt"

// ErrorCode represents a token validation error code
type ErrorCode string

const (
	ErrMissingToken     ErrorCode = "MISSING_TOKEN"
	ErrMalformed        ErrorCode = "MALFORMED"
	ErrInvalidSignature ErrorCode = "INVALID_SIGNATURE"
	ErrExpired          ErrorCode = "EXPIRED"
	ErrEmptyClaims      ErrorCode = "EMPTY_CLAIMS"
	ErrConfigError      ErrorCode = "CONFIG_ERROR"
)

// ValidationError represents a token validation error with a code and message
type ValidationError struct {
	Code     ErrorCode
	Message  string
	Internal error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *ValidationError) Unwrap() error {
	return e.Internal
}

// NewValidationError creates a new validation error
func NewValidationError(code ErrorCode, message string, internal error) *ValidationError {
	return &ValidationError{
		Code:     code,
		Message:  message,
		Internal: internal,
	}
}
