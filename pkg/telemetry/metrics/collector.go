// Package metrics exposes Prometheus metrics for the gateway: HTTP
// request counts and latencies, per-provider attempt outcomes and
// advisory availability, and the live history length.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"crimson-hq/crimson/pkg/config"
)

// Collector owns the Prometheus registry and every gateway metric.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry

	// HTTP request metrics
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// Provider metrics
	providerAttempts     *prometheus.CounterVec
	providerLatency      *prometheus.HistogramVec
	providerAvailability *prometheus.GaugeVec

	// Chat metrics
	chatTurns     *prometheus.CounterVec
	historyLength prometheus.Gauge
}

// NewCollector creates a collector and registers all metrics with the
// provided registry. A nil registry creates a private one.
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "crimson"
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120}
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by path, method and status code",
			},
			[]string{"path", "method", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"path", "method"},
		),

		providerAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_attempts_total",
				Help:      "Provider attempts by provider and outcome (success, failure)",
			},
			[]string{"provider", "outcome"},
		),

		providerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_latency_seconds",
				Help:      "Provider call latency in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"provider"},
		),

		providerAvailability: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_available",
				Help:      "Advisory provider availability (1=available, 0=unavailable)",
			},
			[]string{"provider"},
		),

		chatTurns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "chat_turns_total",
				Help:      "Chat turns by outcome (success, all_failed, invalid_input) and backend",
			},
			[]string{"outcome", "backend"},
		),

		historyLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "history_length",
				Help:      "Current number of turns in the shared history",
			},
		),
	}

	registry.MustRegister(
		c.requests,
		c.requestDuration,
		c.providerAttempts,
		c.providerLatency,
		c.providerAvailability,
		c.chatTurns,
		c.historyLength,
	)

	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRequest records a completed HTTP request.
func (c *Collector) RecordRequest(path, method, status string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.requests.WithLabelValues(path, method, status).Inc()
	c.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordProviderAttempt records one provider attempt and its latency.
func (c *Collector) RecordProviderAttempt(provider string, success bool, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.providerAttempts.WithLabelValues(provider, outcome).Inc()
	c.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// UpdateAvailability updates a provider's advisory availability gauge.
func (c *Collector) UpdateAvailability(provider string, available bool) {
	if !c.config.Enabled {
		return
	}
	value := 0.0
	if available {
		value = 1.0
	}
	c.providerAvailability.WithLabelValues(provider).Set(value)
}

// RecordChatTurn records one completed chat turn.
func (c *Collector) RecordChatTurn(outcome, backend string) {
	if !c.config.Enabled {
		return
	}
	c.chatTurns.WithLabelValues(outcome, backend).Inc()
}

// SetHistoryLength updates the history length gauge.
func (c *Collector) SetHistoryLength(n int) {
	if !c.config.Enabled {
		return
	}
	c.historyLength.Set(float64(n))
}
