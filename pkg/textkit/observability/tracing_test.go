package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs a tracer provider backed by an in-memory exporter.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("textkit")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}
	return exporter, cleanup
}

func attrValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value.AsString(), true
		}
	}
	return "", false
}

func TestStartRenderSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	_, span := StartRenderSpan(context.Background(), "motd.tpl", "render-1")
	require.NotNil(t, span)
	EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "textkit.render", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)

	v, ok := attrValue(spans[0].Attributes, "template.name")
	require.True(t, ok)
	assert.Equal(t, "motd.tpl", v)

	v, ok = attrValue(spans[0].Attributes, "render.id")
	require.True(t, ok)
	assert.Equal(t, "render-1", v)
}

func TestSpanManager(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("store span with error", func(t *testing.T) {
		exporter.Reset()
		_, span := sm.StartStoreSpan(context.Background(), "load", "prod")
		sm.EndSpanWithError(span, errors.New("not found"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "textkit.store.load", spans[0].Name)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.Equal(t, "not found", spans[0].Status.Description)
	})

	t.Run("span event", func(t *testing.T) {
		exporter.Reset()
		ctx, span := sm.StartRenderSpan(context.Background(), "a.tpl", "r-2")
		sm.AddSpanEvent(ctx, "truncated", attribute.Int("capacity", 8))
		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		require.Len(t, spans[0].Events, 1)
		assert.Equal(t, "truncated", spans[0].Events[0].Name)
	})

	t.Run("event without span is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(context.Background(), "orphan")
		})
	})
}

func TestEndSpanWithError_NilSpan(t *testing.T) {
	assert.NotPanics(t, func() { EndSpanWithError(nil, errors.New("x")) })
}

func TestNoopImplementations(t *testing.T) {
	ctx := context.Background()

	var m MetricsRecorder = NoopMetrics{}
	assert.NotPanics(t, func() {
		m.RecordRender(ctx, "a", 0, 0, true, errors.New("x"))
		m.RecordLookups(ctx, "a", 1, 1)
	})

	var sm SpanManager = NoopSpanManager{}
	gotCtx, span := sm.StartRenderSpan(ctx, "a", "b")
	assert.Equal(t, ctx, gotCtx)
	assert.False(t, span.IsRecording())

	gotCtx, span = sm.StartStoreSpan(ctx, "save", "n")
	assert.Equal(t, ctx, gotCtx)
	assert.NotPanics(t, func() {
		sm.AddSpanEvent(ctx, "e")
		sm.EndSpanWithError(span, nil)
	})
}
