// Package handlers provides HTTP handler implementations for the public API,
// the admin dashboard and the static site pages.
//
// This file defines the response helpers shared by all endpoints: the
// ErrorResponse envelope, fail() for errors and ok() for JSON bodies.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/http/middleware"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"missing_field"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"Missing required field: name"`
}

// fail aborts the request with an ErrorResponse. Responses >= 500 are
// logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failService maps a service error to a status and code. Unknown errors
// become a 500 with fallbackCode; their text is logged, not returned.
func failService(c *gin.Context, err error, fallbackCode string) {
	var missing *services.MissingFieldError
	switch {
	case errors.As(err, &missing):
		fail(c, http.StatusBadRequest, ErrCodeMissingField, missing.Error())
	case errors.Is(err, services.ErrInvalidQuantity):
		fail(c, http.StatusBadRequest, ErrCodeInvalidQuantity, services.ErrInvalidQuantity.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, services.ErrOrderNotFound.Error())
	default:
		middleware.LoggerFrom(c).Error().Err(err).Msg("service failure")
		fail(c, http.StatusInternalServerError, fallbackCode, "something went wrong, please try again")
	}
}

// ok writes body as JSON with status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
