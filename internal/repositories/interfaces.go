package repositories

import (
	"context"

	"customer-service/internal/models"
)

// CustomerStoreInterface defines the contract for customer persistence.
// Email uniqueness is enforced by the store itself, not by callers.
type CustomerStoreInterface interface {
	Insert(ctx context.Context, customer *models.Customer) (string, error)
	Get(ctx context.Context, id string) (*models.Customer, error)
	GetByField(ctx context.Context, field, value string) (*models.Customer, error)
	ListAll(ctx context.Context) ([]models.Customer, error)
	Replace(ctx context.Context, id string, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}
