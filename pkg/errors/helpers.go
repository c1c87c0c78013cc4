package errors

import "net/http"

// Helper functions for common error types to simplify error creation

// NewValidationError creates a validation error
func NewValidationError(code, message string) *AppError {
	return New(code, ErrorTypeValidation, message, http.StatusBadRequest)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(code, message string) *AppError {
	return New(code, ErrorTypeNotFound, message, http.StatusNotFound)
}

// NewConfigurationError creates a configuration error for broken static tables
func NewConfigurationError(code, message string) *AppError {
	return New(code, ErrorTypeConfiguration, message, http.StatusInternalServerError)
}

// NewDatabaseError creates a database error
func NewDatabaseError(code, message string) *AppError {
	return New(code, ErrorTypeInfrastructure, message, http.StatusInternalServerError)
}

// NewInternalError creates an internal error
func NewInternalError(code, message string) *AppError {
	return New(code, ErrorTypeInternal, message, http.StatusInternalServerError)
}

// WrapDatabaseError wraps an existing error as database error
func WrapDatabaseError(err error, code, message string) *AppError {
	return NewDatabaseError(code, message).WithCause(err)
}

// WrapInternalError wraps an existing error as internal error
func WrapInternalError(err error, code, message string) *AppError {
	return NewInternalError(code, message).WithCause(err)
}

// WrapConfigurationError wraps an existing error as configuration error
func WrapConfigurationError(err error, code, message string) *AppError {
	return NewConfigurationError(code, message).WithCause(err)
}

// Common error codes as constants
const (
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeNotFound         = "NOT_FOUND"
)
