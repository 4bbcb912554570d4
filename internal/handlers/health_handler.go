package handlers

import (
	"net/http"
	"time"

	"customer-service/internal/dto"
	"customer-service/internal/errors"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	HealthCheck() error
}

// HealthCheckHandler serves the unauthenticated service endpoints
type HealthCheckHandler struct {
	db             Pinger
	projectName    string
	projectVersion string
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db Pinger, projectName, projectVersion string) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:             db,
		projectName:    projectName,
		projectVersion: projectVersion,
	}
}

// Root returns the service banner
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func (h *HealthCheckHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Message: "Welcome to the " + h.projectName,
		Version: h.projectVersion,
	})
}

// HealthCheck reports service and database status
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
