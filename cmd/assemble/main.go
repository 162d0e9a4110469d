// Command assemble builds the Rebel Alliance evacuation-plan dataset: an
// uninhabited-planet survey and the Echo Base document with its evacuation
// plan, assembled from the galactic archive service and local flat files and
// written as indented JSON.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/evac-plan-etl/internal/adapter/archive"
	"github.com/couchcryptid/evac-plan-etl/internal/assemble"
	"github.com/couchcryptid/evac-plan-etl/internal/config"
	"github.com/couchcryptid/evac-plan-etl/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		logger.Error("failed to create output directory", "dir", cfg.OutDir, "error", err)
		os.Exit(1)
	}

	client := archive.NewClient(cfg.ArchiveEndpoint, cfg.ArchiveTimeout, logger, metrics)
	builder := assemble.NewBuilder(client, logger, metrics)
	workflow := assemble.NewWorkflow(client, builder, logger, metrics, cfg.DataDir, cfg.OutDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("assembly starting",
		"endpoint", cfg.ArchiveEndpoint,
		"data_dir", cfg.DataDir,
		"out_dir", cfg.OutDir,
	)

	if err := workflow.Run(ctx); err != nil {
		logger.Error("assembly failed", "error", err)
		observability.LogSummary(logger, prometheus.DefaultGatherer)
		os.Exit(1)
	}

	observability.LogSummary(logger, prometheus.DefaultGatherer)
}
