package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"customer-service/internal/errors"
	"customer-service/internal/handlers"
	"customer-service/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a 500 with the generic system error body.
// Panic values can embed request data, so they are redacted before logging.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				slog.ErrorContext(req.Context(), "panic recovered",
					"trace_id", GetTraceID(c),
					"panic", services.RedactString(fmt.Sprintf("%v", r)),
					"stack_trace", string(debug.Stack()),
					"path", req.URL.Path,
					"method", req.Method,
				)

				apiErrorsTotal.WithLabelValues(
					string(errors.SystemInternalError),
					c.Path(),
					fmt.Sprintf("%d", http.StatusInternalServerError),
				).Inc()

				if c.Response().Committed {
					return
				}
				err = handlers.SendSystemError(c, fmt.Errorf("panic: %v", r))
			}()

			return next(c)
		}
	}
}
