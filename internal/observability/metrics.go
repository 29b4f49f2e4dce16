// Package observability holds the Prometheus collectors shared by the
// dispatcher, the security pipeline and the HTTP layer.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Delivery metrics
	EventsCreatedTotal    *prometheus.CounterVec
	EventOutcomesTotal    *prometheus.CounterVec
	DeliveryAttemptsTotal *prometheus.CounterVec
	DeliveryDuration      prometheus.Histogram
	RetriesScheduledTotal *prometheus.CounterVec
	RetriesExhaustedTotal prometheus.Counter
	WorkerClaimedTotal    prometheus.Counter
	SweeperRequeuedTotal  prometheus.Counter

	// Security metrics
	SecurityEventsTotal      *prometheus.CounterVec
	AlertsTotal              *prometheus.CounterVec
	RateLimitRejectionsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wd_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		EventsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_webhook_events_created_total",
				Help: "Webhook events accepted for delivery",
			},
			[]string{"source"},
		),
		EventOutcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_webhook_event_outcomes_total",
				Help: "Event status after each processing pass",
			},
			[]string{"status"},
		),
		DeliveryAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_webhook_delivery_attempts_total",
				Help: "Outbound delivery attempts by outcome",
			},
			[]string{"outcome"},
		),
		DeliveryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wd_webhook_delivery_duration_seconds",
				Help:    "Outbound delivery attempt duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		RetriesScheduledTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_webhook_retries_scheduled_total",
				Help: "Retries scheduled by backoff strategy",
			},
			[]string{"strategy"},
		),
		RetriesExhaustedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wd_webhook_retries_exhausted_total",
				Help: "Deliveries that ran out of retry budget",
			},
		),
		WorkerClaimedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wd_worker_claimed_events_total",
				Help: "Due events claimed by the retry worker",
			},
		),
		SweeperRequeuedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wd_sweeper_requeued_events_total",
				Help: "Stale events requeued by the sweeper",
			},
		),

		SecurityEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_security_events_total",
				Help: "Security log entries by type and severity",
			},
			[]string{"event_type", "severity"},
		),
		AlertsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_security_alerts_total",
				Help: "Operator alerts by outcome",
			},
			[]string{"outcome"},
		),
		RateLimitRejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wd_rate_limit_rejections_total",
				Help: "Requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.EventsCreatedTotal,
		m.EventOutcomesTotal,
		m.DeliveryAttemptsTotal,
		m.DeliveryDuration,
		m.RetriesScheduledTotal,
		m.RetriesExhaustedTotal,
		m.WorkerClaimedTotal,
		m.SweeperRequeuedTotal,
		m.SecurityEventsTotal,
		m.AlertsTotal,
		m.RateLimitRejectionsTotal,
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, path string, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func (m *Metrics) EventCreated(source string) {
	if m == nil {
		return
	}
	m.EventsCreatedTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) EventOutcome(status string) {
	if m == nil {
		return
	}
	m.EventOutcomesTotal.WithLabelValues(status).Inc()
}

// DeliveryAttempt records one outbound POST.
func (m *Metrics) DeliveryAttempt(success bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.DeliveryAttemptsTotal.WithLabelValues(outcome).Inc()
	m.DeliveryDuration.Observe(d.Seconds())
}

func (m *Metrics) RetryScheduled(strategy string) {
	if m == nil {
		return
	}
	m.RetriesScheduledTotal.WithLabelValues(strategy).Inc()
}

func (m *Metrics) RetriesExhausted() {
	if m == nil {
		return
	}
	m.RetriesExhaustedTotal.Inc()
}

func (m *Metrics) WorkerClaimed(n int) {
	if m == nil {
		return
	}
	m.WorkerClaimedTotal.Add(float64(n))
}

func (m *Metrics) SweeperRequeued(n int64) {
	if m == nil {
		return
	}
	m.SweeperRequeuedTotal.Add(float64(n))
}

func (m *Metrics) SecurityEvent(eventType, severity string) {
	if m == nil {
		return
	}
	m.SecurityEventsTotal.WithLabelValues(eventType, severity).Inc()
}

func (m *Metrics) Alert(sent bool) {
	if m == nil {
		return
	}
	outcome := "failed"
	if sent {
		outcome = "sent"
	}
	m.AlertsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RateLimitRejected(route string) {
	if m == nil {
		return
	}
	m.RateLimitRejectionsTotal.WithLabelValues(route).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
