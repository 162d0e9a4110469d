package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsForTesting()
	reg.MustRegister(m.ArchiveRequests, m.EntitiesBuilt, m.DocumentsWritten)

	m.ArchiveRequests.WithLabelValues("success").Add(12)
	m.EntitiesBuilt.WithLabelValues("planet").Add(3)
	m.DocumentsWritten.Inc()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogSummary(logger, reg)

	out := buf.String()
	assert.Contains(t, out, "archive_requests_total")
	assert.Contains(t, out, "outcome=success")
	assert.Contains(t, out, "value=12")
	assert.Contains(t, out, "entities_built_total")
	assert.Contains(t, out, "documents_written_total")
}

func TestLogSummary_IgnoresForeignFamilies(t *testing.T) {
	reg := prometheus.NewRegistry()
	foreign := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_system_total"})
	reg.MustRegister(foreign)
	foreign.Inc()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogSummary(logger, reg)

	require.NotContains(t, buf.String(), "other_system_total")
}
