package observability

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the assembly run.
type Metrics struct {
	ArchiveRequests        *prometheus.CounterVec // labels: outcome={success,network_error,decode_error}
	ArchiveRequestDuration prometheus.Histogram

	EntitiesBuilt     *prometheus.CounterVec // labels: type={planet,species,person,starship}
	CoercionFallbacks prometheus.Counter
	DocumentsWritten  prometheus.Counter
}

// NewMetrics creates and registers all assembly metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ArchiveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evac_etl",
			Name:      "archive_requests_total",
			Help:      "Archive resource fetches by outcome.",
		}, []string{"outcome"}),
		ArchiveRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "evac_etl",
			Name:      "archive_request_duration_seconds",
			Help:      "Archive GET request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		EntitiesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evac_etl",
			Name:      "entities_built_total",
			Help:      "Entities constructed from source data by type.",
		}, []string{"type"}),
		CoercionFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_etl",
			Name:      "coercion_fallbacks_total",
			Help:      "Source fields that failed numeric conversion and were kept as text.",
		}),
		DocumentsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evac_etl",
			Name:      "documents_written_total",
			Help:      "Output JSON documents written.",
		}),
	}

	prometheus.MustRegister(
		m.ArchiveRequests,
		m.ArchiveRequestDuration,
		m.EntitiesBuilt,
		m.CoercionFallbacks,
		m.DocumentsWritten,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ArchiveRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "evac_etl", Name: "archive_requests_total"}, []string{"outcome"}),
		ArchiveRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "evac_etl", Name: "archive_request_duration_seconds"}),
		EntitiesBuilt:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "evac_etl", Name: "entities_built_total"}, []string{"type"}),
		CoercionFallbacks:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_etl", Name: "coercion_fallbacks_total"}),
		DocumentsWritten:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "evac_etl", Name: "documents_written_total"}),
	}
}

// LogSummary gathers the registry and logs final counter totals. A batch run
// has nothing to scrape, so the counts are emitted once at exit instead.
func LogSummary(logger *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Warn("gather metrics failed", "error", err)
		return
	}

	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, "evac_etl_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			c := m.GetCounter()
			if c == nil {
				continue
			}
			attrs := []any{"value", c.GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.Info(strings.TrimPrefix(name, "evac_etl_"), attrs...)
		}
	}
}
