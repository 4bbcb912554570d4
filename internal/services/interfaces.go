package services

import (
	"context"
	"time"

	"customer-service/internal/dto"
	"customer-service/internal/models"
)

// CustomerServiceInterface defines the customer operations exposed to handlers
type CustomerServiceInterface interface {
	Create(ctx context.Context, req *dto.CustomerRequest) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Update(ctx context.Context, id string, req *dto.CustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CustomerLoggerInterface defines the structured events recorded around customer operations
type CustomerLoggerInterface interface {
	LogOperationStarted(ctx context.Context, operation string, level PrivacyLevel, fields map[string]any)
	LogOperationSucceeded(ctx context.Context, operation string, fields map[string]any)
	LogCustomerNotFound(ctx context.Context, operation string, fields map[string]any)
	LogDuplicateEmail(ctx context.Context, operation string, email string)
	LogValidationFailure(ctx context.Context, operation string, details []string)
	LogOperationFailed(ctx context.Context, operation string, err error)
	LogAuthorizationFailure(ctx context.Context, reason string, err error)
}

// TokenServiceInterface defines the contract for bearer token handling
type TokenServiceInterface interface {
	GenerateAccessToken(subject string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
