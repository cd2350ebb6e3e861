// Package observability provides structured logging, metrics, and tracing
// for template renders.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds render context to a logger.
// Returns a new logger with render_id and template fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "3f0c...", "motd.tpl")
//	enriched.Info("rendering") // includes render_id, template
func EnrichLogger(logger *slog.Logger, renderID, template string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("render_id", renderID),
		slog.String("template", template),
	)
}

// LogRenderStart logs the start of a render.
func LogRenderStart(logger *slog.Logger, template string, facts int) {
	if logger == nil {
		return
	}
	logger.Debug("render starting",
		slog.String("template", template),
		slog.Int("facts", facts),
	)
}

// LogRenderComplete logs a successful render.
func LogRenderComplete(logger *slog.Logger, template string, elapsed time.Duration, bytes int, truncated bool) {
	if logger == nil {
		return
	}
	logger.Info("render completed",
		slog.String("template", template),
		slog.Float64("duration_ms", Milliseconds(elapsed)),
		slog.Int("bytes", bytes),
		slog.Bool("truncated", truncated),
	)
}

// LogRenderError logs a failed render.
func LogRenderError(logger *slog.Logger, template string, err error) {
	if logger == nil {
		return
	}
	logger.Error("render failed",
		slog.String("template", template),
		slog.String("error", err.Error()),
	)
}

// LogMissingReference logs a reference with no value in the context.
func LogMissingReference(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("reference not found",
		slog.String("key", key),
	)
}

// LogStoreError logs a fact store failure (non-fatal).
func LogStoreError(logger *slog.Logger, name string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("fact store operation failed",
		slog.String("fact_set", name),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation starts a clock for an operation. The returned function
// reports the time elapsed since TimedOperation was called.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds, the unit used in
// log fields and latency histograms.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
