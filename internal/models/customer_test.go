package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerName_ValueScanRoundTrip(t *testing.T) {
	name := CustomerName{
		Prefix:     "Dr",
		Surname:    "Jane",
		MiddleName: "Q",
		FamilyName: "Doe",
		Suffix:     "PhD",
	}

	value, err := name.Value()
	require.NoError(t, err)

	encoded, ok := value.(string)
	require.True(t, ok, "value should be a string for SQLite compatibility")
	assert.Contains(t, encoded, `"family_name":"Doe"`)

	var fromString CustomerName
	require.NoError(t, fromString.Scan(encoded))
	assert.Equal(t, name, fromString)

	var fromBytes CustomerName
	require.NoError(t, fromBytes.Scan([]byte(encoded)))
	assert.Equal(t, name, fromBytes)
}

func TestCustomerName_ScanNilAndInvalid(t *testing.T) {
	n := CustomerName{Surname: "Old"}
	require.NoError(t, n.Scan(nil))
	assert.Equal(t, CustomerName{}, n)

	err := n.Scan(42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot scan int")
}

func TestCustomerName_OptionalFieldsOmitted(t *testing.T) {
	value, err := CustomerName{Surname: "Jane", FamilyName: "Doe"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"surname":"Jane","family_name":"Doe"}`, value)
}

func TestCustomer_BeforeCreate(t *testing.T) {
	c := &Customer{Email: "jane.doe@example.com"}
	require.NoError(t, c.BeforeCreate(nil))

	_, err := uuid.Parse(c.ID)
	assert.NoError(t, err)
	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.IsZero())

	preset := &Customer{ID: "fixed-id", Email: "x@example.com"}
	require.NoError(t, preset.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", preset.ID)

	assert.Error(t, (&Customer{}).BeforeCreate(nil))
}

func TestCustomer_TableName(t *testing.T) {
	assert.Equal(t, "customers", (&Customer{}).TableName())
}
