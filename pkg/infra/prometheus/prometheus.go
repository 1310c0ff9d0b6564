package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	HTTPRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qa_http_requests_total",
			Help: "Total number of API requests processed",
		},
		[]string{"method", "status"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qa_http_latency_ms",
			Help:    "API request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method"},
	)

	ModerationRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qa_moderation_requests_total",
			Help: "Moderation checks by outcome",
		},
		[]string{"outcome"},
	)

	ModerationAttemptsTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "qa_moderation_attempts_total",
			Help: "Outbound exchanges with the moderation service, retries included",
		},
	)

	ModerationLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qa_moderation_latency_ms",
			Help:    "Moderation check latency in milliseconds, retries included",
			Buckets: latencyBuckets,
		},
	)
)

type MetricsConfig struct {
	EnableHTTP       bool // Per request counters and latency
	EnableModeration bool // Moderation outcome, attempts and latency
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableHTTP:       true,
		EnableModeration: true,
	}
}

var (
	Config       MetricsConfig
	registerOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registerOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

// Gatherer exposes the service registry for the /metrics endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
