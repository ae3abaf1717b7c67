package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return InitMetrics(reg), reg
}

func TestInitMetrics_registersAllMetrics(t *testing.T) {
	m, reg := newTestMetrics(t)

	// Vectors only show up in Gather once a label set exists.
	m.RecordRequest("getHealth", "GET", 200, time.Millisecond)
	m.RecordRetry("getHealth")
	m.RecordMissingParameter("getComponent")
	m.SetCircuitBreakerState(0)
	m.RecordTokenRefresh(true)

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"fabconsole_requests_total",
		"fabconsole_request_duration_seconds",
		"fabconsole_retries_total",
		"fabconsole_missing_parameter_total",
		"fabconsole_circuit_breaker_state",
		"fabconsole_token_refresh_total",
	}, names)
}

func TestRecordRequest(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordRequest("getComponent", "GET", 200, 50*time.Millisecond)
	m.RecordRequest("getComponent", "GET", 200, 70*time.Millisecond)
	m.RecordRequest("getComponent", "GET", 0, time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("getComponent", "GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("getComponent", "GET", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestRecordMissingParameter(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.RecordMissingParameter("createCa")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MissingParameterTotal.WithLabelValues("createCa")))
}

func TestCircuitBreakerState(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.SetCircuitBreakerState(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CircuitBreakerState))
}

func TestRecordTokenRefresh(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.RecordTokenRefresh(true)
	m.RecordTokenRefresh(false)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TokenRefreshTotal.WithLabelValues("failure")))
}

func TestNilMetrics_isSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("getHealth", "GET", 200, time.Millisecond)
		m.RecordRetry("getHealth")
		m.RecordMissingParameter("getHealth")
		m.SetCircuitBreakerState(1)
		m.RecordTokenRefresh(false)
	})
}
