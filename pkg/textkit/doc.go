/*
Package textkit renders text templates against sets of facts.

The building blocks live in subpackages:

  - buffer: self-growing byte buffer
  - strlist: ordered string lists with set algebra, sort, join and split
  - vars: string-keyed fact maps
  - template: the $name / ${name} interpolation engine
  - config: settings and fact file loading
  - factstore: named fact-set snapshots in memory or SQLite
  - observability: logging, metrics, and tracing helpers

This package ties them together for callers that want observability
around a render:

	facts := vars.FromMap(map[string]string{"name": "Clockwork"})
	res, err := textkit.Render(ctx, "motd", "Welcome to $name", facts,
	    textkit.WithObservabilityLogger(logger),
	    textkit.WithMetrics(true),
	    textkit.WithTracing(true),
	)

# Observability

Logging uses log/slog and adds render_id and template fields. Metrics
(textkit.render.count, textkit.render.latency_ms, textkit.lookup.missing,
...) and spans (textkit.render, textkit.store.save, textkit.store.load)
use the global OpenTelemetry providers.

# Fact Stores

	store, err := factstore.NewSQLiteStore("facts.db")
	info, err := textkit.SaveFacts(ctx, store, "web-01", facts)
	facts, err = textkit.LoadFacts(ctx, store, "web-01")

Store failures are returned as *StoreError and unwrap to the store's
sentinel errors.
*/
package textkit
