package dto

import (
	"customer-service/internal/models"
)

// APIVersion is stamped on every successful response body
const APIVersion = "1.0"

// VersionedResponse wraps every successful payload with the API version
type VersionedResponse[T any] struct {
	APIVersion string `json:"api_version"`
	Data       T      `json:"data"`
}

// NewVersionedResponse builds a fresh envelope for a single response
func NewVersionedResponse[T any](data T) VersionedResponse[T] {
	return VersionedResponse[T]{
		APIVersion: APIVersion,
		Data:       data,
	}
}

// CustomerNameRequest mirrors models.CustomerName with validation rules
type CustomerNameRequest struct {
	Prefix     string `json:"prefix" validate:"max=10"`
	Surname    string `json:"surname" validate:"required,min=1,max=50"`
	MiddleName string `json:"middle_name" validate:"max=50"`
	FamilyName string `json:"family_name" validate:"required,min=1,max=50"`
	Suffix     string `json:"suffix" validate:"max=10"`
}

// CustomerRequest is the complete payload for both create and update
type CustomerRequest struct {
	Name        CustomerNameRequest `json:"name"`
	Email       string              `json:"email" validate:"required,email"`
	PhoneNumber string              `json:"phone_number" validate:"required,min=10"`
}

// ToModel converts the request into a customer without an ID
func (r *CustomerRequest) ToModel() *models.Customer {
	return &models.Customer{
		Name: models.CustomerName{
			Prefix:     r.Name.Prefix,
			Surname:    r.Name.Surname,
			MiddleName: r.Name.MiddleName,
			FamilyName: r.Name.FamilyName,
			Suffix:     r.Name.Suffix,
		},
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

// DeleteCustomerResponse represents the response after deleting a customer
type DeleteCustomerResponse struct {
	Message string `json:"message"`
}

// ServiceInfoResponse is returned from the unauthenticated root endpoint
type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
