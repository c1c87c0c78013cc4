// Package errors defines error code constants for Poligap.
package errors

import "net/http"

// ErrorCode represents a structured error code definition
type ErrorCode struct {
	Code       string
	Type       ErrorType
	HTTPStatus int
	Message    string
}

// ============================================================================
// Request Errors (REQ_xxx)
// ============================================================================

var (
	// ErrInvalidRequest indicates a malformed request body or parameter
	ErrInvalidRequest = ErrorCode{
		Code:       "REQ_001",
		Type:       ErrorTypeValidation,
		HTTPStatus: http.StatusBadRequest,
		Message:    "Invalid request",
	}

	// ErrMissingDocumentText indicates the request carried no document text
	ErrMissingDocumentText = ErrorCode{
		Code:       "REQ_002",
		Type:       ErrorTypeValidation,
		HTTPStatus: http.StatusBadRequest,
		Message:    "Document text is required",
	}

	// ErrAnalysisNotFound indicates the requested analysis record does not exist
	ErrAnalysisNotFound = ErrorCode{
		Code:       "REQ_003",
		Type:       ErrorTypeNotFound,
		HTTPStatus: http.StatusNotFound,
		Message:    "Analysis not found",
	}
)

// ============================================================================
// Catalogue Errors (CATALOG_xxx) — raised at load time, never per request
// ============================================================================

var (
	// ErrCatalogWeightSum indicates a framework's rule weights do not sum to the
	// expected total
	ErrCatalogWeightSum = ErrorCode{
		Code:       "CATALOG_001",
		Type:       ErrorTypeConfiguration,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "Framework rule weights do not sum to the expected total",
	}

	// ErrCatalogMalformed indicates a structurally invalid catalogue entry
	ErrCatalogMalformed = ErrorCode{
		Code:       "CATALOG_002",
		Type:       ErrorTypeConfiguration,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "Malformed rule catalogue entry",
	}

	// ErrCatalogFileUnreadable indicates a catalogue override file could not be
	// read or parsed
	ErrCatalogFileUnreadable = ErrorCode{
		Code:       "CATALOG_003",
		Type:       ErrorTypeConfiguration,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "Rule catalogue override file could not be loaded",
	}
)

// ============================================================================
// Infrastructure Errors (INFRA_xxx)
// ============================================================================

var (
	// ErrDatabase indicates a persistence layer failure
	ErrDatabase = ErrorCode{
		Code:       "INFRA_001",
		Type:       ErrorTypeInfrastructure,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "Database operation failed",
	}

	// ErrCacheUnavailable indicates the distributed cache could not be reached
	ErrCacheUnavailable = ErrorCode{
		Code:       "INFRA_002",
		Type:       ErrorTypeInfrastructure,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "Cache backend unavailable",
	}

	// ErrSummarizerUnavailable indicates the external summarizer call failed;
	// callers fall back to engine output and never surface this to users
	ErrSummarizerUnavailable = ErrorCode{
		Code:       "INFRA_003",
		Type:       ErrorTypeInfrastructure,
		HTTPStatus: http.StatusBadGateway,
		Message:    "Summarizer service unavailable",
	}
)

// NewFromCode creates an AppError from an ErrorCode definition
func NewFromCode(ec ErrorCode) *AppError {
	return New(ec.Code, ec.Type, ec.Message, ec.HTTPStatus)
}

// NewFromCodef creates an AppError from an ErrorCode with a custom message
func NewFromCodef(ec ErrorCode, format string, args ...interface{}) *AppError {
	return Newf(ec.Code, ec.Type, ec.HTTPStatus, format, args...)
}
