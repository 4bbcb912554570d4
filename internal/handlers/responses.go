package handlers

import (
	"net/http"

	"customer-service/internal/dto"
	"customer-service/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (4xx, catalogued codes) or
// SendSystemError (500, generic message only). Successful bodies always go
// through SendVersioned so every payload carries the API version.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind the generic internal error message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendVersioned writes data wrapped in the versioned envelope
func SendVersioned[T any](c echo.Context, status int, data T) error {
	return c.JSON(status, dto.NewVersionedResponse(data))
}
