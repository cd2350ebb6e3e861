package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records textkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a render with its duration, output size and outcome.
	RecordRender(ctx context.Context, template string, duration time.Duration, bytes int, truncated bool, err error)

	// RecordLookups records how many references resolved and how many missed.
	RecordLookups(ctx context.Context, template string, resolved, missing int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders         metric.Int64Counter
	renderLatency   metric.Float64Histogram
	renderErrors    metric.Int64Counter
	renderBytes     metric.Int64Histogram
	truncations     metric.Int64Counter
	lookupsResolved metric.Int64Counter
	lookupsMissing  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("textkit")

	renders, err := meter.Int64Counter("textkit.render.count",
		metric.WithDescription("Number of template renders"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("textkit.render.latency_ms",
		metric.WithDescription("Render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	renderErrors, err := meter.Int64Counter("textkit.render.errors",
		metric.WithDescription("Number of failed renders"),
	)
	if err != nil {
		return nil, err
	}

	renderBytes, err := meter.Int64Histogram("textkit.render.size_bytes",
		metric.WithDescription("Rendered output size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	truncations, err := meter.Int64Counter("textkit.render.truncations",
		metric.WithDescription("Number of renders cut short by the output capacity"),
	)
	if err != nil {
		return nil, err
	}

	lookupsResolved, err := meter.Int64Counter("textkit.lookup.resolved",
		metric.WithDescription("Number of references resolved from the context"),
	)
	if err != nil {
		return nil, err
	}

	lookupsMissing, err := meter.Int64Counter("textkit.lookup.missing",
		metric.WithDescription("Number of references with no value in the context"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:         renders,
		renderLatency:   renderLatency,
		renderErrors:    renderErrors,
		renderBytes:     renderBytes,
		truncations:     truncations,
		lookupsResolved: lookupsResolved,
		lookupsMissing:  lookupsMissing,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRender records a render.
func (m *otelMetrics) RecordRender(ctx context.Context, template string, duration time.Duration, bytes int, truncated bool, err error) {
	attrs := metric.WithAttributes(
		attribute.String("template", template),
	)

	m.renders.Add(ctx, 1, attrs)
	m.renderLatency.Record(ctx, Milliseconds(duration), attrs)
	m.renderBytes.Record(ctx, int64(bytes), attrs)

	if truncated {
		m.truncations.Add(ctx, 1, attrs)
	}
	if err != nil {
		m.renderErrors.Add(ctx, 1, attrs)
	}
}

// RecordLookups records reference resolution counts.
func (m *otelMetrics) RecordLookups(ctx context.Context, template string, resolved, missing int) {
	attrs := metric.WithAttributes(
		attribute.String("template", template),
	)
	m.lookupsResolved.Add(ctx, int64(resolved), attrs)
	m.lookupsMissing.Add(ctx, int64(missing), attrs)
}
