// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "archbot"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// ChatTurnsTotal counts dispatcher outcomes by reply kind.
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Chat turns handled, by reply kind",
		},
		[]string{"kind"},
	)

	ProjectsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blueprint",
			Name:      "projects_created_total",
			Help:      "Project blueprints persisted, by project type",
		},
		[]string{"project_type"},
	)

	FallbackMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fallback",
			Name:      "matches_total",
			Help:      "Conversational fallback selections, by trigger",
		},
		[]string{"trigger"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent handling one chat turn",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"kind"},
	)

	ChatTurnsPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "retention",
			Name:      "chat_turns_pruned_total",
			Help:      "Chat history rows removed by the retention job",
		},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)

// RecordTurn records one dispatcher outcome.
func RecordTurn(kind string, took time.Duration) {
	ChatTurnsTotal.WithLabelValues(kind).Inc()
	DispatchDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func RecordProjectCreated(projectType string) {
	ProjectsCreatedTotal.WithLabelValues(projectType).Inc()
}

// RecordFallback records which canned trigger answered; "default" when none did.
func RecordFallback(trigger string) {
	if trigger == "" {
		trigger = "default"
	}
	FallbackMatchesTotal.WithLabelValues(trigger).Inc()
}
