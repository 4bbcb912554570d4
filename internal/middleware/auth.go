package middleware

import (
	stderrors "errors"

	"customer-service/internal/errors"
	"customer-service/internal/handlers"
	"customer-service/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SubjectContextKey holds the authenticated token subject
	SubjectContextKey = "subject"
	// TokenJTIContextKey holds the id of the accepted token
	TokenJTIContextKey = "token_jti"
)

// RequireAuth rejects requests without a valid bearer access token before any handler runs
func RequireAuth(tokenService services.TokenServiceInterface, logger services.CustomerLoggerInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	reject := func(c echo.Context, reason string, err error, code errors.ErrorCode) error {
		logger.LogAuthorizationFailure(c.Request().Context(), reason, err)
		metrics.IncrementCounter(services.MetricAuthenticationEvent, map[string]string{"event_type": reason})
		return handlers.SendError(c, code)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, "missing_token", nil, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return reject(c, "invalid_header", err, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return reject(c, "expired_token", err, errors.AuthExpiredToken)
				}
				return reject(c, "invalid_token", err, errors.AuthInvalidTokenFormat)
			}

			c.Set(SubjectContextKey, claims.Subject)
			c.Set(TokenJTIContextKey, claims.ID)
			metrics.IncrementCounter(services.MetricAuthenticationEvent, map[string]string{"event_type": "accepted"})

			return next(c)
		}
	}
}
