package telemetry

import (
	"context"

	"customer-service/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for handler spans
const TracerName = "customer-service"

// NewTracerProvider builds a tracer provider sampling cfg.SampleRatio of root spans.
// Exporters are attached through opts; without one, spans are recorded and dropped.
func NewTracerProvider(cfg config.TelemetryConfig, version string, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", version),
	)

	base := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}

	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

// Setup installs a tracer provider as the global provider and returns its shutdown func
func Setup(cfg config.TelemetryConfig, version string, opts ...sdktrace.TracerProviderOption) (trace.Tracer, func(context.Context) error) {
	tp := NewTracerProvider(cfg, version, opts...)
	otel.SetTracerProvider(tp)
	return tp.Tracer(TracerName), tp.Shutdown
}
