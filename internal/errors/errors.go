package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized = "UNAUTHORIZED"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Msg
}

// NewAPIError creates a new APIError
func NewAPIError(code, msg string) *APIError {
	return &APIError{
		Code: code,
		Msg:  msg,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, msg))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, msg))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, msg))
}

// Conflict sends a 400 response for uniqueness violations. Duplicate keys map
// to 400 rather than 409 to stay wire-compatible with existing clients.
func Conflict(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Resource already exists"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeAlreadyExists, msg))
}

// InternalError sends a 400 response for upstream failures. The API surface
// defines no distinct 5xx class; storage failures reach clients as 400.
func InternalError(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Internal server error"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInternalError, msg))
}
