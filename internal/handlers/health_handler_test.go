package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-service/internal/dto"
	apierrors "customer-service/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) HealthCheck() error { return p.err }

func TestHealthCheckHandler_Root(t *testing.T) {
	e := echo.New()
	h := NewHealthCheckHandler(stubPinger{}, "Customer Service", "1.2.3")

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, h.Root(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body dto.ServiceInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Welcome to the Customer Service", body.Message)
	assert.Equal(t, "1.2.3", body.Version)
}

func TestHealthCheckHandler_Healthy(t *testing.T) {
	e := echo.New()
	h := NewHealthCheckHandler(stubPinger{}, "Customer Service", "1.2.3")

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, h.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestHealthCheckHandler_DatabaseDown(t *testing.T) {
	e := echo.New()
	h := NewHealthCheckHandler(stubPinger{err: errors.New("connection refused")}, "Customer Service", "1.2.3")

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	c.Set(TraceIDContextKey, "health-trace")

	require.NoError(t, h.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(apierrors.SystemServiceUnavailable), body.Code)
	assert.Equal(t, "health-trace", body.TraceID)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
