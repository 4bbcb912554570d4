package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-service/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("a customer with this email already exists")
	ErrUnsupportedField = errors.New("unsupported lookup field")
)

// lookupFields lists the columns GetByField may query
var lookupFields = map[string]struct{}{
	"id":    {},
	"email": {},
}

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerStoreInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Insert stores a new customer and returns its id
func (r *CustomerRepository) Insert(ctx context.Context, customer *models.Customer) (string, error) {
	if customer == nil {
		return "", errors.New("customer cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	return customer.ID, nil
}

// Get retrieves a customer by id
func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	return r.GetByField(ctx, "id", id)
}

// GetByField retrieves the single customer whose field equals value
func (r *CustomerRepository) GetByField(ctx context.Context, field, value string) (*models.Customer, error) {
	if _, ok := lookupFields[field]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedField, field)
	}

	var customer models.Customer
	if err := r.db.WithContext(ctx).Where(field+" = ?", value).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by %s: %w", field, err)
	}

	return &customer, nil
}

// ListAll returns every customer ordered by creation time
func (r *CustomerRepository) ListAll(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Replace overwrites every mutable field of the customer identified by id
func (r *CustomerRepository) Replace(ctx context.Context, id string, customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         customer.Name,
			"email":        customer.Email,
			"phone_number": customer.PhoneNumber,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	customer.ID = id
	return nil
}

// Delete permanently removes the customer identified by id
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// isDuplicateKeyError checks if the error is a unique constraint violation
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
