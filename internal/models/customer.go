package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerName is the structured name embedded in every customer.
// It is persisted as a single JSON column rather than flattened.
type CustomerName struct {
	Prefix     string `json:"prefix,omitempty"`
	Surname    string `json:"surname"`
	MiddleName string `json:"middle_name,omitempty"`
	FamilyName string `json:"family_name"`
	Suffix     string `json:"suffix,omitempty"`
}

// Value implements driver.Valuer interface
func (n CustomerName) Value() (driver.Value, error) {
	bytes, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (n *CustomerName) Scan(value interface{}) error {
	if value == nil {
		*n = CustomerName{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CustomerName", value)
	}

	return json.Unmarshal(bytes, n)
}

type Customer struct {
	ID          string       `gorm:"type:varchar(36);primary_key" json:"id"`
	Name        CustomerName `gorm:"type:text;not null" json:"name"`
	Email       string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber string       `gorm:"type:varchar(32);not null" json:"phone_number"`
	CreatedAt   time.Time    `gorm:"not null" json:"-"`
	UpdatedAt   time.Time    `gorm:"not null" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if c.Email == "" {
		return errors.New("email is required")
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customers"
}
