package services

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"sort"

	"customer-service/internal/logging"
)

// PrivacyLevel classifies how sensitive the content of a log event is.
// It is metadata only: redaction runs regardless of level.
type PrivacyLevel string

const (
	PrivacyLow    PrivacyLevel = "LOW"
	PrivacyMedium PrivacyLevel = "MEDIUM"
	PrivacyHigh   PrivacyLevel = "HIGH"
)

const (
	EmailMask = "****@****"
	PhoneMask = "**********"
)

var (
	emailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+`)
	phonePattern = regexp.MustCompile(`\b\d{10}\b`)
)

// PrivacyLogger emits slog records whose field values have been redacted
type PrivacyLogger struct {
	logger *slog.Logger
}

func NewPrivacyLogger(logger *slog.Logger) *PrivacyLogger {
	return &PrivacyLogger{logger: logger}
}

func (p *PrivacyLogger) Info(ctx context.Context, msg string, level PrivacyLevel, fields map[string]any) {
	p.log(ctx, slog.LevelInfo, msg, level, fields)
}

func (p *PrivacyLogger) Warn(ctx context.Context, msg string, level PrivacyLevel, fields map[string]any) {
	p.log(ctx, slog.LevelWarn, msg, level, fields)
}

func (p *PrivacyLogger) Error(ctx context.Context, msg string, level PrivacyLevel, fields map[string]any) {
	p.log(ctx, slog.LevelError, msg, level, fields)
}

func (p *PrivacyLogger) log(ctx context.Context, lvl slog.Level, msg string, level PrivacyLevel, fields map[string]any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !p.logger.Enabled(ctx, lvl) {
		return
	}

	attrs := make([]slog.Attr, 0, len(fields)+2)
	attrs = append(attrs, slog.String("privacy_level", string(level)))
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, Redact(fields[k])))
	}

	p.logger.LogAttrs(ctx, lvl, RedactString(msg), attrs...)
}

// RedactString masks email addresses, then standalone runs of exactly ten digits
func RedactString(s string) string {
	s = emailPattern.ReplaceAllString(s, EmailMask)
	return phonePattern.ReplaceAllString(s, PhoneMask)
}

// Redact returns a copy of v with every string inside it passed through RedactString.
// Maps, slices and arrays are walked recursively; any other value is returned as is.
// The input is never modified and Redact never panics.
func Redact(v any) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = RedactString(fmt.Sprintf("%v", v))
		}
	}()
	return redactValue(v)
}

func redactValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return RedactString(t)
	case []byte:
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = redactValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = redactValue(val)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, val := range t {
			out[i] = RedactString(val)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		// named string types keep their type
		return reflect.ValueOf(RedactString(rv.String())).Convert(rv.Type()).Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), redactElem(iter.Value(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(redactElem(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(redactElem(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()
	}

	return v
}

// redactElem redacts a container element, keeping the container's element type
func redactElem(elem reflect.Value, elemType reflect.Type) reflect.Value {
	if !elem.CanInterface() {
		return elem
	}
	redacted := redactValue(elem.Interface())
	if redacted == nil {
		return reflect.Zero(elemType)
	}
	rv := reflect.ValueOf(redacted)
	if !rv.Type().AssignableTo(elemType) {
		return elem
	}
	return rv
}
