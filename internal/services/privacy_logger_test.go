package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"customer-service/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"email", "john.doe@example.com", EmailMask},
		{"phone", "1234567890", PhoneMask},
		{"embedded email", "contact jane_d@mail.example.org today", "contact " + EmailMask + " today"},
		{"embedded phone", "call 5551234567 now", "call " + PhoneMask + " now"},
		{"eleven digits untouched", "12345678901", "12345678901"},
		{"nine digits untouched", "123456789", "123456789"},
		{"both", "a@b.co 0987654321", EmailMask + " " + PhoneMask},
		{"plus addressing", "john+tag@example.com", EmailMask},
		{"non-ascii email", "jöhn@exämple.com", EmailMask},
		{"percent in local part", "a%40b@example.com", EmailMask},
		{"plain", "nothing sensitive", "nothing sensitive"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactString(tt.input))
		})
	}
}

func TestRedact_PassesThroughNonText(t *testing.T) {
	assert.Nil(t, Redact(nil))
	assert.Equal(t, 42, Redact(42))
	assert.Equal(t, true, Redact(true))
	assert.Equal(t, 3.14, Redact(3.14))
	assert.Equal(t, []byte("a@b.com"), Redact([]byte("a@b.com")))

	type point struct{ X, Y int }
	assert.Equal(t, point{1, 2}, Redact(point{1, 2}))
}

func TestRedact_NestedStructuresAreCopied(t *testing.T) {
	input := map[string]any{
		"email": "jane.doe@example.com",
		"count": 3,
		"nested": map[string]any{
			"phone": "1234567890",
			"list":  []any{"x@y.com", 7, map[string]string{"k": "0000000000"}},
		},
		"tags": []string{"ok", "z@z.io"},
		"none": nil,
	}

	got, ok := Redact(input).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, EmailMask, got["email"])
	assert.Equal(t, 3, got["count"])
	assert.Nil(t, got["none"])
	assert.Equal(t, []string{"ok", EmailMask}, got["tags"])

	nested := got["nested"].(map[string]any)
	assert.Equal(t, PhoneMask, nested["phone"])
	list := nested["list"].([]any)
	assert.Equal(t, EmailMask, list[0])
	assert.Equal(t, 7, list[1])
	assert.Equal(t, map[string]string{"k": PhoneMask}, list[2])

	// input untouched
	assert.Equal(t, "jane.doe@example.com", input["email"])
	assert.Equal(t, "1234567890", input["nested"].(map[string]any)["phone"])
	assert.Equal(t, "x@y.com", input["nested"].(map[string]any)["list"].([]any)[0])
	assert.Equal(t, []string{"ok", "z@z.io"}, input["tags"])
}

func TestRedact_ReflectedContainers(t *testing.T) {
	type label string

	byID := map[int][]string{1: {"a@b.com"}}
	got := Redact(byID).(map[int][]string)
	assert.Equal(t, []string{EmailMask}, got[1])
	assert.Equal(t, "a@b.com", byID[1][0])

	arr := [2]string{"1234567890", "x"}
	assert.Equal(t, [2]string{PhoneMask, "x"}, Redact(arr))

	assert.Equal(t, label(EmailMask), Redact(label("me@host.org")))

	var nilMap map[string]int
	assert.Equal(t, nilMap, Redact(nilMap))
}

type addressStringer struct{}

func (addressStringer) String() string { return "me@host.org" }

func TestRedact_UnusualValuesDoNotPanic(t *testing.T) {
	ch := make(chan int)
	input := map[string]any{"s": addressStringer{}, "ch": ch, "fn": func() {}}

	var got any
	assert.NotPanics(t, func() {
		got = Redact(input)
	})
	out := got.(map[string]any)
	assert.Equal(t, addressStringer{}, out["s"])
	assert.Equal(t, ch, out["ch"])
}

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestPrivacyLogger_RedactsEveryLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewPrivacyLogger(newBufferLogger(&buf))
	ctx := logging.WithRequestID(context.Background(), "req-1")

	for _, level := range []PrivacyLevel{PrivacyLow, PrivacyMedium, PrivacyHigh} {
		logger.Info(ctx, "event", level, map[string]any{
			"email": "john.doe@example.com",
			"phone": "1234567890",
		})
	}

	out := buf.String()
	assert.NotContains(t, out, "john.doe@example.com")
	assert.NotContains(t, out, "1234567890")

	records := decodeRecords(t, &buf)
	require.Len(t, records, 3)
	for i, level := range []PrivacyLevel{PrivacyLow, PrivacyMedium, PrivacyHigh} {
		assert.Equal(t, string(level), records[i]["privacy_level"])
		assert.Equal(t, "req-1", records[i]["request_id"])
		assert.Equal(t, EmailMask, records[i]["email"])
		assert.Equal(t, PhoneMask, records[i]["phone"])
	}
}

func TestPrivacyLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewPrivacyLogger(newBufferLogger(&buf))

	logger.Warn(context.Background(), "warned", PrivacyMedium, nil)
	logger.Error(context.Background(), "failed", PrivacyHigh, nil)

	records := decodeRecords(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "ERROR", records[1]["level"])
	assert.NotContains(t, records[0], "request_id")
}

func TestPrivacyLogger_RespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewPrivacyLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})))

	logger.Info(context.Background(), "dropped", PrivacyLow, map[string]any{"k": "v"})
	assert.Empty(t, buf.String())
}
