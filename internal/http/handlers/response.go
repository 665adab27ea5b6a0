// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints: the structured error envelope, the submission result envelope,
// and helpers for common HTTP patterns.
//
// Two envelopes coexist on purpose:
//   - ErrorResponse carries rejected requests (validation failures, missing
//     routes, internal errors) with a stable machine-readable `code`.
//   - SubmitResponse is the uniform `{success, message}` result of the two
//     write operations. A persistence failure is reported through it with
//     success=false and a generic message; the original cause is logged
//     server-side only and never leaks to the caller.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gesol/go-solar-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: optional correlation ID, echoed from X-Request-ID, used to
//     correlate server logs with client-side errors.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: a human-readable description, safe for display to users.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"validation_failed"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"Nome é obrigatório"`
}

// SubmitResponse is the uniform result envelope of the submission endpoints.
type SubmitResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Contato enviado com sucesso!"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware so operators see the cause without it reaching the client.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// submitFailed reports a persistence failure through the result envelope.
// The HTTP status stays 200: the request itself was well-formed, the outcome
// is carried by the envelope. The underlying error is logged server-side.
func submitFailed(c *gin.Context, userMsg string, cause error) {
	middleware.LoggerFrom(c).Error().Err(cause).Msg("submission failed")
	c.JSON(http.StatusOK, SubmitResponse{Success: false, Message: userMsg})
}
