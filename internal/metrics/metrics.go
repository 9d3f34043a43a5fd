// Package metrics exposes the prometheus collectors of the service. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

const namespace = "turnier"

// Outcome labels
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Snapshot directions
const (
	DirectionSave = "save"
	DirectionLoad = "load"
)

type Metrics struct {
	registry         *prometheus.Registry
	operations       *prometheus.CounterVec
	warnings         *prometheus.CounterVec
	snapshotDuration *prometheus.HistogramVec
}

// New creates a registry with the service collectors plus the Go and
// process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Tournament operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_warnings_total",
			Help:      "Integrity warnings by code.",
		}, []string{"code"}),
		snapshotDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_duration_seconds",
			Help:      "Duration of snapshot saves and loads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"direction"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.warnings,
		m.snapshotDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Operation counts one call of op
func (m *Metrics) Operation(op string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(op, outcome).Inc()
}

// Warnings counts each warning by code
func (m *Metrics) Warnings(diags common.Diagnostics) {
	if m == nil {
		return
	}
	for _, w := range diags {
		m.warnings.WithLabelValues(w.Code).Inc()
	}
}

// ObserveSnapshot records the duration of a save or load
func (m *Metrics) ObserveSnapshot(direction string, d time.Duration) {
	if m == nil {
		return
	}
	m.snapshotDuration.WithLabelValues(direction).Observe(d.Seconds())
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
