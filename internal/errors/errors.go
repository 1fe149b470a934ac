package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Authentication errors. InvalidCredentials deliberately covers both
	// unknown identifier and wrong password so the response never reveals
	// which identifiers exist.
	ErrInvalidCredentials    = NewDomainError("INVALID_CREDENTIALS", "Invalid credentials")
	ErrMissingToken          = NewDomainError("MISSING_TOKEN", "refresh token required")
	ErrUnknownToken          = NewDomainError("UNKNOWN_TOKEN", "refresh token not recognized")
	ErrInvalidOrExpiredToken = NewDomainError("INVALID_OR_EXPIRED_TOKEN", "Invalid refresh token")
	ErrUnauthorized          = NewDomainError("UNAUTHORIZED", "unauthorized")

	// Resource errors
	ErrNotFound    = NewDomainError("NOT_FOUND", "resource not found")
	ErrEmailExists = NewDomainError("EMAIL_EXISTS", "an account with this email already exists")
	ErrPhoneExists = NewDomainError("PHONE_EXISTS", "an account with this phone number already exists")
	ErrInvalidRole = NewDomainError("INVALID_ROLE", "one or more provided roles are invalid")

	// Validation errors
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "invalid input")

	// System errors
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "internal server error")
	ErrServiceUnavailable = NewDomainError("SERVICE_UNAVAILABLE", "service unavailable")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "INVALID_INPUT":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "MISSING_TOKEN":
		return http.StatusUnauthorized

	// 403 Forbidden: a token that is well-formed but no longer honored
	case "UNKNOWN_TOKEN", "INVALID_OR_EXPIRED_TOKEN":
		return http.StatusForbidden

	// 404 Not Found
	case "NOT_FOUND":
		return http.StatusNotFound

	// 409 Conflict
	case "EMAIL_EXISTS", "PHONE_EXISTS":
		return http.StatusConflict

	// 422 on bad role references
	case "INVALID_ROLE":
		return http.StatusBadRequest

	// 503 Service Unavailable
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
