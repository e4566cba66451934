package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Field-level validation errors
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Generation pipeline errors
	CodeConfiguration     ErrorCode = "CONFIGURATION_ERROR"
	CodeExternalService   ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeInvalidAPIKey     ErrorCode = "INVALID_API_KEY"
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewInvalidInputError signals that an operation was invoked with wholly
// absent input (nil quiz or nil answers). Shape problems inside individual
// question entries never produce this error; those are soft-defaulted.
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

// NewConfigurationError signals a missing or placeholder credential,
// detected before any call to the external generative service.
func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

// NewExternalServiceError signals a transport failure or a non-success
// response from the external generative service.
func NewExternalServiceError(message string, cause error) *DomainError {
	return NewError(CodeExternalService, message, cause)
}

// NewInvalidAPIKeyError is the invalid-credential variant of an external
// service failure. Callers use it to tell a configuration problem apart
// from a transient generation failure.
func NewInvalidAPIKeyError(cause error) *DomainError {
	return NewError(CodeInvalidAPIKey,
		"The generative service rejected the configured API key. Check GEMINI_API_KEY and restart the server.",
		cause)
}

// NewMalformedResponseError signals that the external service answered
// successfully but its payload could not be parsed into a quiz.
func NewMalformedResponseError(message string, cause error) *DomainError {
	return NewError(CodeMalformedResponse, message, cause)
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures for one request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format: %s", field, value),
	}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}
