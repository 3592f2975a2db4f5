package dto

import (
	"time"
)

// ErrorCategory names the kind of failure in an error body
type ErrorCategory string

// Error categories and the status each one is sent with
const (
	CategoryNotFound         ErrorCategory = "NotFound"              // 404
	CategoryBusinessRule     ErrorCategory = "BusinessRuleViolation" // 400
	CategoryMalformedRequest ErrorCategory = "MalformedRequest"      // 400
	CategoryMethodNotAllowed ErrorCategory = "MethodNotAllowed"      // 405
	CategoryInternal         ErrorCategory = "InternalError"         // 500
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error     ErrorCategory `json:"error"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Status    int           `json:"status"`
}

// NewErrorResponse creates an error body stamped with the current time
func NewErrorResponse(category ErrorCategory, message string, status int) *ErrorResponse {
	return &ErrorResponse{
		Error:     category,
		Message:   message,
		Timestamp: time.Now(),
		Status:    status,
	}
}

// ExistsResponse answers existence checks
type ExistsResponse struct {
	Existe bool `json:"existe"`
}
