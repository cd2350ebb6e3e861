package textkit

import (
	"log/slog"

	"github.com/randalmurphal/textkit/pkg/textkit/observability"
	"github.com/randalmurphal/textkit/pkg/textkit/template"
)

// runConfig holds configuration for a render or store call.
type runConfig struct {
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
	renderID       string
	expander       *template.Expander
}

func defaultRunConfig() runConfig {
	return runConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

func newRunConfig(opts []RunOption) runConfig {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RunOption configures Render, SaveFacts and LoadFacts.
type RunOption func(*runConfig)

// WithObservabilityLogger enables structured logging of renders and
// store failures.
// Default: nil (no logging)
func WithObservabilityLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
// Default: false
func WithMetrics(enabled bool) RunOption {
	return func(c *runConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry spans using the global tracer provider.
// Default: false
func WithTracing(enabled bool) RunOption {
	return func(c *runConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithRenderID sets the ID attached to logs and spans of a render.
// Default: a random UUID per render.
func WithRenderID(id string) RunOption {
	return func(c *runConfig) {
		c.renderID = id
	}
}

// WithExpander sets the expander used by Render.
// Default: template.NewExpander() with the observability logger attached.
func WithExpander(e *template.Expander) RunOption {
	return func(c *runConfig) {
		c.expander = e
	}
}
