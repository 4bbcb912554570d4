package services

import (
	"context"
	"log/slog"
)

// CustomerLogger records one structured event per customer operation step.
// Every event goes through PrivacyLogger, so emails and phone numbers are masked.
type CustomerLogger struct {
	logger *PrivacyLogger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	return &CustomerLogger{
		logger: NewPrivacyLogger(logger),
	}
}

// LogOperationStarted logs the attempt event emitted before an operation runs
func (cl *CustomerLogger) LogOperationStarted(ctx context.Context, operation string, level PrivacyLevel, fields map[string]any) {
	cl.logger.Info(ctx, operation+" started", level, withEvent(fields, operation, "started"))
}

// LogOperationSucceeded logs a successful outcome
func (cl *CustomerLogger) LogOperationSucceeded(ctx context.Context, operation string, fields map[string]any) {
	cl.logger.Info(ctx, operation+" succeeded", PrivacyLow, withEvent(fields, operation, "succeeded"))
}

// LogCustomerNotFound logs a lookup, update or delete against an absent customer
func (cl *CustomerLogger) LogCustomerNotFound(ctx context.Context, operation string, fields map[string]any) {
	cl.logger.Warn(ctx, "customer not found", PrivacyHigh, withEvent(fields, operation, "not_found"))
}

// LogDuplicateEmail logs a write rejected by the email uniqueness constraint
func (cl *CustomerLogger) LogDuplicateEmail(ctx context.Context, operation string, email string) {
	cl.logger.Warn(ctx, "customer email already exists", PrivacyHigh, withEvent(map[string]any{
		"email": email,
	}, operation, "duplicate_email"))
}

// LogValidationFailure logs every field-level violation of a rejected payload
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, details []string) {
	cl.logger.Warn(ctx, "customer validation failed", PrivacyHigh, withEvent(map[string]any{
		"errors": details,
	}, operation, "validation_failed"))
}

// LogOperationFailed logs an unexpected failure with its raw detail
func (cl *CustomerLogger) LogOperationFailed(ctx context.Context, operation string, err error) {
	cl.logger.Error(ctx, operation+" failed", PrivacyHigh, withEvent(map[string]any{
		"error": errorText(err),
	}, operation, "failed"))
}

// LogAuthorizationFailure logs a request rejected by the auth gate
func (cl *CustomerLogger) LogAuthorizationFailure(ctx context.Context, reason string, err error) {
	cl.logger.Warn(ctx, "authorization failed", PrivacyHigh, map[string]any{
		"event_type": "authorization_failed",
		"reason":     reason,
		"error":      errorText(err),
	})
}

func withEvent(fields map[string]any, operation, outcome string) map[string]any {
	out := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out["operation"] = operation
	out["event_type"] = operation + "_" + outcome
	return out
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
