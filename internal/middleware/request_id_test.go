package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-service/internal/logging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithRequestID runs RequestID around a handler that captures every place the id lands
func serveWithRequestID(t *testing.T, incoming string) (header, fromEcho, fromCtx string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromCtx = logging.RequestIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(TraceIDHeader), fromEcho, fromCtx
}

func TestRequestID_GeneratesUUIDWhenAbsent(t *testing.T) {
	header, fromEcho, fromCtx := serveWithRequestID(t, "")

	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, fromEcho)
	assert.Equal(t, header, fromCtx)
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	header, fromEcho, fromCtx := serveWithRequestID(t, "existing-trace-id-12345")

	assert.Equal(t, "existing-trace-id-12345", header)
	assert.Equal(t, "existing-trace-id-12345", fromEcho)
	assert.Equal(t, "existing-trace-id-12345", fromCtx)
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	first, _, _ := serveWithRequestID(t, "")
	second, _, _ := serveWithRequestID(t, "")

	assert.NotEqual(t, first, second)
}

func TestGetTraceID_EmptyWhenNotSet(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
