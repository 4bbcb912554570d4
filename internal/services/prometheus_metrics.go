package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter names accepted by PrometheusMetrics.IncrementCounter
const (
	MetricCustomerCreated     = "customer_created"
	MetricCustomerUpdated     = "customer_updated"
	MetricCustomerDeleted     = "customer_deleted"
	MetricCustomerOperation   = "customer_operation"
	MetricAuthenticationEvent = "authentication_event"
)

type PrometheusMetrics struct {
	customerCreatedTotal      prometheus.Counter
	customerUpdatedTotal      prometheus.Counter
	customerDeletedTotal      prometheus.Counter
	customerOperationsTotal   *prometheus.CounterVec
	customerOperationDuration *prometheus.HistogramVec
	customersTotal            prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the service metrics with reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		customerCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerUpdatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_updated_total",
				Help: "Total number of customers updated",
			},
		),
		customerDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		customerOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_operations_total",
				Help: "Total number of customer operations by outcome",
			},
			[]string{"operation", "status"},
		),
		customerOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_operation_duration_seconds",
				Help:    "Customer operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		customersTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "customers_total",
				Help: "Number of customers returned by the last full listing",
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCustomerCreated:
		m.customerCreatedTotal.Inc()
	case MetricCustomerUpdated:
		m.customerUpdatedTotal.Inc()
	case MetricCustomerDeleted:
		m.customerDeletedTotal.Inc()
	case MetricCustomerOperation:
		if operation, status := tags["operation"], tags["status"]; operation != "" && status != "" {
			m.customerOperationsTotal.WithLabelValues(operation, status).Inc()
		}
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

// RecordProcessingTime observes the duration of the named customer operation
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.customerOperationDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "customers" {
		m.customersTotal.Set(value)
	}
}
