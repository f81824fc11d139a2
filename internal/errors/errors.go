package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds used across services and handlers. The wire format is always a
// bare {"message": ...} envelope; the kind decides the HTTP status.
const (
	KindValidation   = "VALIDATION_ERROR"
	KindUnauthorized = "UNAUTHORIZED"
	KindConflict     = "CONFLICT"
	KindNotFound     = "NOT_FOUND"
	KindServer       = "SERVER_ERROR"
)

// APIError represents a failure mapped to an HTTP response.
type APIError struct {
	Kind    string `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// New creates a new APIError
func New(kind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// BadRequest sends a 400 response. Validation failures, duplicate emails and
// rejected credentials all map here, matching the API contract.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, New(KindValidation, message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, New(KindUnauthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, New(KindNotFound, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Server error"
	}
	RespondWithError(c, http.StatusInternalServerError, New(KindServer, message))
}
