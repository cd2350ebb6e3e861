package textkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/randalmurphal/textkit/pkg/textkit/factstore"
	"github.com/randalmurphal/textkit/pkg/textkit/observability"
	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// ParseFact splits a "key=value" assignment. The value may be empty and
// may itself contain '='.
func ParseFact(assignment string) (key, value string, err error) {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFact, assignment)
	}
	return key, value, nil
}

// SetFacts applies every "key=value" assignment to facts, in order.
func SetFacts(facts *vars.Map, assignments []string) error {
	for _, a := range assignments {
		key, value, err := ParseFact(a)
		if err != nil {
			return err
		}
		facts.Set(key, value)
	}
	return nil
}

// SaveFacts snapshots facts into store under name.
func SaveFacts(ctx context.Context, store factstore.Store, name string, facts *vars.Map, opts ...RunOption) (info factstore.Info, err error) {
	cfg := newRunConfig(opts)
	if cfg.tracingEnabled {
		_, span := cfg.spans.StartStoreSpan(ctx, "save", name)
		defer func() {
			cfg.spans.EndSpanWithError(span, err)
		}()
	}

	info, err = store.Save(name, facts)
	if err != nil {
		observability.LogStoreError(cfg.logger, name, "save", err)
		return info, &StoreError{Name: name, Op: "save", Err: err}
	}
	return info, nil
}

// LoadFacts reads the fact set stored under name.
func LoadFacts(ctx context.Context, store factstore.Store, name string, opts ...RunOption) (facts *vars.Map, err error) {
	cfg := newRunConfig(opts)
	if cfg.tracingEnabled {
		_, span := cfg.spans.StartStoreSpan(ctx, "load", name)
		defer func() {
			cfg.spans.EndSpanWithError(span, err)
		}()
	}

	facts, err = store.Load(name)
	if err != nil {
		observability.LogStoreError(cfg.logger, name, "load", err)
		return nil, &StoreError{Name: name, Op: "load", Err: err}
	}
	return facts, nil
}
