package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	require.NotNil(t, m)

	m.DeliveryAttempt(true, 120*time.Millisecond)
	m.DeliveryAttempt(false, time.Second)
	m.DeliveryAttempt(false, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveryAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeliveryAttemptsTotal.WithLabelValues("failure")))
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewMetrics(registry)

	assert.Panics(t, func() { NewMetrics(registry) })
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.EventCreated("api")
		m.EventOutcome("delivered")
		m.DeliveryAttempt(true, time.Millisecond)
		m.RetryScheduled("fixed")
		m.RetriesExhausted()
		m.WorkerClaimed(3)
		m.SweeperRequeued(2)
		m.SecurityEvent("login_failed", "medium")
		m.Alert(false)
		m.RateLimitRejected("login")
		m.ObserveHTTP("GET", "/health", "200", time.Millisecond)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	m.SecurityEvent("account_locked", "high")
	m.RateLimitRejected("login")

	srv := httptest.NewServer(Handler(registry))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `wd_security_events_total{event_type="account_locked",severity="high"} 1`))
	assert.True(t, strings.Contains(text, `wd_rate_limit_rejections_total{route="login"} 1`))
}
