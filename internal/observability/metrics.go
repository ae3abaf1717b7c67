package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var requestDurationBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics holds the Prometheus instruments of the console client. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal         *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
	RetriesTotal          *prometheus.CounterVec
	MissingParameterTotal *prometheus.CounterVec
	CircuitBreakerState   prometheus.Gauge
	TokenRefreshTotal     *prometheus.CounterVec
}

// InitMetrics creates and registers all Prometheus metric instruments.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fabconsole_requests_total",
			Help: "Total number of console requests by outcome.",
		}, []string{"operation", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fabconsole_request_duration_seconds",
			Help:    "Console request duration in seconds, retries included.",
			Buckets: requestDurationBuckets,
		}, []string{"operation"}),
		RetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fabconsole_retries_total",
			Help: "Total number of console request retries.",
		}, []string{"operation"}),
		MissingParameterTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fabconsole_missing_parameter_total",
			Help: "Calls rejected locally because required parameters were missing.",
		}, []string{"operation"}),
		CircuitBreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fabconsole_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		}),
		TokenRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fabconsole_token_refresh_total",
			Help: "IAM token exchanges by outcome.",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RetriesTotal,
		m.MissingParameterTotal,
		m.CircuitBreakerState,
		m.TokenRefreshTotal,
	)

	return m
}

// RecordRequest records one completed call. status is the HTTP status, or
// 0 when no response was received.
func (m *Metrics) RecordRequest(operation, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := strconv.Itoa(status)
	if status == 0 {
		label = "error"
	}
	m.RequestsTotal.WithLabelValues(operation, method, label).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRetry records a retried attempt.
func (m *Metrics) RecordRetry(operation string) {
	if m == nil {
		return
	}
	m.RetriesTotal.WithLabelValues(operation).Inc()
}

// RecordMissingParameter records a call rejected before any I/O.
func (m *Metrics) RecordMissingParameter(operation string) {
	if m == nil {
		return
	}
	m.MissingParameterTotal.WithLabelValues(operation).Inc()
}

// SetCircuitBreakerState sets the breaker gauge.
// State: 0=closed, 1=half-open, 2=open.
func (m *Metrics) SetCircuitBreakerState(state float64) {
	if m == nil {
		return
	}
	m.CircuitBreakerState.Set(state)
}

// RecordTokenRefresh records an IAM token exchange.
func (m *Metrics) RecordTokenRefresh(ok bool) {
	if m == nil {
		return
	}
	status := "success"
	if !ok {
		status = "failure"
	}
	m.TokenRefreshTotal.WithLabelValues(status).Inc()
}
