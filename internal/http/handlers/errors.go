package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/domain"
	"jobboard/internal/http/middleware"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondTyped(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Store errors are
// surfaced as a plain 500; the core never retries on the caller's behalf.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondTyped(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondTyped(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsInvalidTransition(err):
		respondTyped(c, http.StatusUnprocessableEntity, "invalid_transition", err.Error(), nil)
	case domain.IsConflict(err):
		respondTyped(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondTyped(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
