package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for build-event export
type Metrics struct {
	registry *prometheus.Registry

	// Session metrics
	SessionsTotal          *prometheus.CounterVec
	DependenciesPerSession prometheus.Histogram

	// Hook metrics
	HookInvocationsTotal *prometheus.CounterVec
	HookDuration         prometheus.Histogram
	HookDiagnosticsTotal prometheus.Counter
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		SessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildexport_sessions_total",
				Help: "Total number of finished export sessions",
			},
			[]string{"rebuilt"},
		),
		DependenciesPerSession: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buildexport_session_dependencies",
				Help:    "Number of dependencies reported per export session",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),

		HookInvocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildexport_hook_invocations_total",
				Help: "Total number of hook invocations by outcome",
			},
			[]string{"outcome"},
		),
		HookDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buildexport_hook_duration_seconds",
				Help:    "Time from hook spawn to reap in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		HookDiagnosticsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "buildexport_hook_diagnostics_total",
				Help: "Total number of diagnostic lines captured from hook stderr",
			},
		),
	}

	m.registry.MustRegister(
		m.SessionsTotal,
		m.DependenciesPerSession,
		m.HookInvocationsTotal,
		m.HookDuration,
		m.HookDiagnosticsTotal,
	)

	return m
}

// RecordSession counts a finished export session.
func (m *Metrics) RecordSession(rebuilt bool, dependencies int) {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues(strconv.FormatBool(rebuilt)).Inc()
	m.DependenciesPerSession.Observe(float64(dependencies))
}

// RecordHook counts one hook invocation. Durations are only observed for
// hooks that were actually spawned.
func (m *Metrics) RecordHook(outcome string, duration time.Duration, diagnostic bool) {
	if m == nil {
		return
	}
	m.HookInvocationsTotal.WithLabelValues(outcome).Inc()
	if duration > 0 {
		m.HookDuration.Observe(duration.Seconds())
	}
	if diagnostic {
		m.HookDiagnosticsTotal.Inc()
	}
}

// WriteTextfile writes the current metric values in the text exposition
// format, for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
