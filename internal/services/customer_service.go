package services

import (
	"context"
	"errors"
	"fmt"

	"customer-service/internal/dto"
	"customer-service/internal/models"
	"customer-service/internal/repositories"
	"customer-service/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("a customer with this email already exists")
)

// CustomerService implements the customer operations on top of a store.
// It keeps no state between calls.
type CustomerService struct {
	store repositories.CustomerStoreInterface
}

// NewCustomerService creates a new customer service
func NewCustomerService(store repositories.CustomerStoreInterface) CustomerServiceInterface {
	return &CustomerService{
		store: store,
	}
}

// Create validates req and stores it under a freshly generated id
func (s *CustomerService) Create(ctx context.Context, req *dto.CustomerRequest) (*models.Customer, error) {
	if err := validation.ValidateCustomer(req); err != nil {
		return nil, err
	}

	customer := req.ToModel()
	customer.ID = uuid.New().String()

	if _, err := s.store.Insert(ctx, customer); err != nil {
		return nil, mapStoreError(err, "failed to create customer")
	}

	return customer, nil
}

// GetAll returns every customer in store order
func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetByID returns the customer with the given id; malformed ids are simply not found
func (s *CustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "failed to get customer")
	}
	return customer, nil
}

// GetByEmail returns the customer whose email matches exactly
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.store.GetByField(ctx, "email", email)
	if err != nil {
		return nil, mapStoreError(err, "failed to get customer by email")
	}
	return customer, nil
}

// Update replaces every field of an existing customer with the validated payload
func (s *CustomerService) Update(ctx context.Context, id string, req *dto.CustomerRequest) (*models.Customer, error) {
	if err := validation.ValidateCustomer(req); err != nil {
		return nil, err
	}

	customer := req.ToModel()
	if err := s.store.Replace(ctx, id, customer); err != nil {
		return nil, mapStoreError(err, "failed to update customer")
	}
	customer.ID = id

	return customer, nil
}

// Delete removes the customer permanently
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return mapStoreError(err, "failed to delete customer")
	}
	return nil
}

func mapStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, repositories.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return ErrDuplicateEmail
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
