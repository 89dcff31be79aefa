// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business logic errors
	CodeProfileInvalid       ErrorCode = "PROFILE_INVALID"
	CodeUnsupportedFramework ErrorCode = "UNSUPPORTED_FRAMEWORK"
	CodeFoodNotFound         ErrorCode = "FOOD_NOT_FOUND"
	CodeOverrideNotFound     ErrorCode = "OVERRIDE_NOT_FOUND"
	CodeEmptyCatalog         ErrorCode = "EMPTY_CATALOG"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeProfileInvalid, CodeUnsupportedFramework:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeFoodNotFound, CodeOverrideNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeEmptyCatalog:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewProfileInvalidError creates a profile validation error
func NewProfileInvalidError(framework string, cause error) *AppError {
	return NewAppError(
		CodeProfileInvalid,
		"Profile validation failed",
		cause.Error(),
	).WithMetadata("framework", framework).WithCause(cause)
}

// NewUnsupportedFrameworkError creates an unsupported framework error
func NewUnsupportedFrameworkError(framework string) *AppError {
	return NewAppError(
		CodeUnsupportedFramework,
		"Unsupported framework",
		fmt.Sprintf("No rule set is registered for framework %q", framework),
	).WithMetadata("framework", framework)
}

// NewFoodNotFoundError creates a food not found error
func NewFoodNotFoundError(foodID string) *AppError {
	return NewAppError(
		CodeFoodNotFound,
		"Food not found",
		fmt.Sprintf("Food with ID %s does not exist", foodID),
	).WithMetadata("food_id", foodID)
}

// NewOverrideNotFoundError creates an override not found error
func NewOverrideNotFoundError(userID, itemID string) *AppError {
	return NewAppError(
		CodeOverrideNotFound,
		"Override not found",
		fmt.Sprintf("No override recorded for user %s and item %s", userID, itemID),
	).WithMetadata("user_id", userID).WithMetadata("item_id", itemID)
}

// NewEmptyCatalogError indicates no food in the catalog was scoreable
// for the requested framework.
func NewEmptyCatalogError(framework string) *AppError {
	return NewAppError(
		CodeEmptyCatalog,
		"No scoreable foods",
		fmt.Sprintf("No food in the catalog carries valid %s attributes", framework),
	).WithMetadata("framework", framework)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service string, cause error) *AppError {
	return NewAppError(
		CodeExternalServiceError,
		"External service error",
		fmt.Sprintf("Failed to communicate with %s", service),
	).WithCause(cause)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// FieldError represents a field validation error
type FieldError struct {
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
	Tag     string      `json:"tag"`
	Message string      `json:"message"`
}

// FieldErrors represents multiple field validation errors
type FieldErrors []FieldError

// Error implements the error interface
func (v FieldErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// NewFieldErrors creates a validation AppError from field errors
func NewFieldErrors(errs []FieldError) *AppError {
	fieldErrs := FieldErrors(errs)
	return NewAppError(
		CodeValidationFailed,
		"Validation failed",
		fieldErrs.Error(),
	).WithMetadata("validation_errors", fieldErrs)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
		},
	}
}
