package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ferrors "github.com/gcbaptista/tfidx-engine/internal/errors"
)

// ErrorCode represents standardized error codes for the API.
type ErrorCode string

const (
	ErrorCodeInvalidID       ErrorCode = "INVALID_ID"
	ErrorCodeInvalidDocument ErrorCode = "INVALID_DOCUMENT"
	ErrorCodeInvalidQuery    ErrorCode = "INVALID_QUERY"
	ErrorCodeUnknownID       ErrorCode = "UNKNOWN_ID"
	ErrorCodeInvalidJSON     ErrorCode = "INVALID_JSON"
	ErrorCodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// APIError is a standardized error response body.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SendError writes a standardized error response.
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// SendInvalidJSONError reports a malformed request body.
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid JSON in request body: "+err.Error())
}

// SendEngineError inspects err's kind and writes the matching status
// code and error code; falls back to 500 for anything unrecognized.
func SendEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ferrors.ErrInvalidID):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidID, err.Error())
	case errors.Is(err, ferrors.ErrInvalidDocument):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidDocument, err.Error())
	case errors.Is(err, ferrors.ErrInvalidQuery):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
	case errors.Is(err, ferrors.ErrUnknownID):
		SendError(c, http.StatusNotFound, ErrorCodeUnknownID, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
	}
}
