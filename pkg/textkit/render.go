package textkit

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/textkit/pkg/textkit/observability"
	"github.com/randalmurphal/textkit/pkg/textkit/template"
	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// Render expands tpl against facts with logging, metrics and tracing as
// configured by opts. name identifies the template in logs, metric
// attributes and spans.
//
// The returned Result is filled in even when err is non-nil; err is a
// *RenderError wrapping the expander's error.
//
// Example:
//
//	res, err := textkit.Render(ctx, "motd", "Welcome to $name", facts,
//	    textkit.WithObservabilityLogger(logger),
//	    textkit.WithMetrics(true),
//	)
func Render(ctx context.Context, name, tpl string, facts *vars.Map, opts ...RunOption) (res template.Result, err error) {
	cfg := newRunConfig(opts)

	renderID := cfg.renderID
	if renderID == "" {
		renderID = uuid.NewString()
	}
	logger := observability.EnrichLogger(cfg.logger, renderID, name)

	if cfg.tracingEnabled {
		var span trace.Span
		ctx, span = cfg.spans.StartRenderSpan(ctx, name, renderID)
		defer func() {
			cfg.spans.EndSpanWithError(span, err)
		}()
	}

	observability.LogRenderStart(logger, name, facts.Len())
	done := observability.TimedOperation()

	exp := cfg.expander
	if exp == nil {
		exp = template.NewExpander(template.WithLogger(logger))
	}
	res, err = exp.Render(tpl, facts)
	elapsed := done()

	cfg.metrics.RecordRender(ctx, name, elapsed, len(res.Text), res.Truncated, err)
	cfg.metrics.RecordLookups(ctx, name, res.Resolved, len(res.Missing))

	if cfg.tracingEnabled && len(res.Missing) > 0 {
		cfg.spans.AddSpanEvent(ctx, "unresolved references",
			attribute.Int("missing", len(res.Missing)),
			attribute.String("names", strings.Join(res.Missing, ",")),
		)
	}

	if err != nil {
		err = &RenderError{Template: name, Err: err}
		observability.LogRenderError(logger, name, err)
		return res, err
	}
	observability.LogRenderComplete(logger, name, elapsed, len(res.Text), res.Truncated)
	return res, nil
}
