package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the HTTP layer
var (
	// ErrNotFound is returned when the requested entity or collection does not exist
	ErrNotFound = errors.New("not found")
	// ErrBusinessRule is returned when the database or a pre-flight check rejects an operation
	ErrBusinessRule = errors.New("business rule violation")
)

// CustomError represents application-specific errors with a displayable message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error carrying a message for the caller
func NewNotFoundError(message string) error {
	return NewCustomError(ErrNotFound, message)
}

// NewNotFoundErrorf is NewNotFoundError with formatting
func NewNotFoundErrorf(format string, args ...interface{}) error {
	return NewCustomError(ErrNotFound, fmt.Sprintf(format, args...))
}

// NewBusinessRuleError creates a business-rule error carrying a message for the caller
func NewBusinessRuleError(message string) error {
	return NewCustomError(ErrBusinessRule, message)
}

// NewBusinessRuleErrorf is NewBusinessRuleError with formatting
func NewBusinessRuleErrorf(format string, args ...interface{}) error {
	return NewCustomError(ErrBusinessRule, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is, or wraps, ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBusinessRule reports whether err is, or wraps, ErrBusinessRule
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrBusinessRule)
}

// Message returns the displayable message of the outermost CustomError in the chain.
// Wrapping added by services with fmt.Errorf is skipped so callers only see the rule text.
func Message(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
