package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-position-api/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeInvalidParameter ErrorCode = "invalid_parameter"
	ErrCodeNotSupported     ErrorCode = "not_supported"
	ErrCodeDataNotExists    ErrorCode = "data_not_exists"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeTimeout       ErrorCode = "timeout"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInvalidParameterError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidParameter,
		Message: "Invalid parameter",
		Details: strings.Join(details, ", "),
	}
}

func NewNotSupportedError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotSupported,
		Message: "Not supported",
		Details: strings.Join(details, ", "),
	}
}

func NewDataNotExistsError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDataNotExists,
		Message: "Data not exists",
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewTimeoutError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTimeout,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// HTTPStatus returns the response status of an error code
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeInvalidParameter:
		return http.StatusBadRequest
	case ErrCodeNotSupported, ErrCodeDataNotExists:
		// disabled templates are reported like missing data
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromDomain converts an engine or store error into an API error.
// Errors without a domain meaning become internal errors.
func FromDomain(err error) *APIError {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, domain.ErrInvalidParameter):
		return NewInvalidParameterError(err.Error())
	case errors.Is(err, domain.ErrNotSupported):
		return NewNotSupportedError(err.Error())
	case errors.Is(err, domain.ErrDataNotExists):
		return NewDataNotExistsError(err.Error())
	case errors.Is(err, domain.ErrListingAlreadyExists):
		return NewConflictError("Listing already exists", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return NewUnauthorizedError("Authentication failed", err.Error())
	default:
		return NewInternalError("Internal server error")
	}
}
