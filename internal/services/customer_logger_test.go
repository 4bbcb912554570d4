package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"customer-service/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerLogger_Events(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomerLogger(newBufferLogger(&buf))
	ctx := logging.WithRequestID(context.Background(), "trace-9")

	logger.LogOperationStarted(ctx, "create_customer", PrivacyMedium, map[string]any{"email": "jane.doe@example.com"})
	logger.LogOperationSucceeded(ctx, "create_customer", map[string]any{"customer_id": "abc"})
	logger.LogCustomerNotFound(ctx, "get_customer", map[string]any{"customer_id": "missing"})
	logger.LogDuplicateEmail(ctx, "create_customer", "jane.doe@example.com")
	logger.LogValidationFailure(ctx, "update_customer", []string{"email: must be a valid email address"})
	logger.LogOperationFailed(ctx, "delete_customer", errors.New("dial tcp: user 5551234567 refused"))
	logger.LogAuthorizationFailure(ctx, "missing_token", nil)

	assert.NotContains(t, buf.String(), "jane.doe@example.com")
	assert.NotContains(t, buf.String(), "5551234567")

	records := decodeRecords(t, &buf)
	require.Len(t, records, 7)

	expected := []struct {
		event   string
		level   string
		privacy PrivacyLevel
	}{
		{"create_customer_started", "INFO", PrivacyMedium},
		{"create_customer_succeeded", "INFO", PrivacyLow},
		{"get_customer_not_found", "WARN", PrivacyHigh},
		{"create_customer_duplicate_email", "WARN", PrivacyHigh},
		{"update_customer_validation_failed", "WARN", PrivacyHigh},
		{"delete_customer_failed", "ERROR", PrivacyHigh},
		{"authorization_failed", "WARN", PrivacyHigh},
	}
	for i, want := range expected {
		assert.Equal(t, want.event, records[i]["event_type"], "record %d", i)
		assert.Equal(t, want.level, records[i]["level"], "record %d", i)
		assert.Equal(t, string(want.privacy), records[i]["privacy_level"], "record %d", i)
		assert.Equal(t, "trace-9", records[i]["request_id"], "record %d", i)
	}

	assert.Equal(t, EmailMask, records[0]["email"])
	assert.Equal(t, "abc", records[1]["customer_id"])
	assert.Equal(t, "dial tcp: user "+PhoneMask+" refused", records[5]["error"])
}

func TestCustomerLogger_DoesNotMutateCallerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomerLogger(newBufferLogger(&buf))
	fields := map[string]any{"email": "x@y.com"}

	logger.LogOperationStarted(context.Background(), "get_customer_by_email", PrivacyMedium, fields)

	assert.Equal(t, map[string]any{"email": "x@y.com"}, fields)
}
