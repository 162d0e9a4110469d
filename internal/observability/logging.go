package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/evac-plan-etl/internal/config"
)

// NewLogger builds the process logger from LOG_LEVEL / LOG_FORMAT settings.
// Unknown levels fall back to info; any format other than "text" gets the
// JSON handler.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
