// Package response defines the JSON envelope shared by all API endpoints
// and helpers for producing consistent error payloads.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error codes returned in the error envelope.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Response is the envelope for every API reply. Success carries Data,
// failure carries Error; the two are mutually exclusive.
type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details holds per-field
// validation messages when applicable.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created writes a 201 success envelope.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// BadRequest writes a 400 with an invalid_request code.
func BadRequest(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 for an unparsable request body.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, "Request body could not be parsed")
}

// ValidationError writes a 400 with per-field validation details.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, "Request validation failed", details)
}

// NotFound writes a 404.
func NotFound(c echo.Context, message string) error {
	return writeError(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// ServiceUnavailable writes a 503, used when every flight provider failed.
func ServiceUnavailable(c echo.Context, message string) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, message, nil)
}

// GatewayTimeout writes a 504 for searches that exceeded their deadline.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, "The request timed out", nil)
}

// InternalServerError writes a 500 with a generic message; internals are
// never exposed to the client.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, "An unexpected error occurred", nil)
}

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// HealthStatus is the payload for the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Health writes a 200 health payload.
func Health(c echo.Context, service, version string) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:  "ok",
		Service: service,
		Version: version,
	})
}
