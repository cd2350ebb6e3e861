package template

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/textkit/pkg/textkit/buffer"
	"github.com/randalmurphal/textkit/pkg/textkit/strlist"
)

// Expander expands variable references in strings.
//
// Create with NewExpander() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	missingAction MissingAction
	capacity      int
	blockSize     int
	logger        *slog.Logger
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - MissingAction: MissingEmpty (missing references expand to nothing)
//   - Capacity: unbounded
//   - BlockSize: buffer.DefaultBlockSize
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		missingAction: MissingEmpty,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a Render.
type Result struct {
	// Text is the expanded output.
	Text string

	// Resolved counts references found in the lookup.
	Resolved int

	// Missing lists unresolved reference names in template order,
	// including the body of an unterminated ${ reference.
	Missing []string

	// Truncated reports that output was dropped to respect the capacity.
	Truncated bool
}

func (e *Expander) scanner(tpl string, vars Lookup, out sink) *scanner {
	return &scanner{
		tpl:    tpl,
		vars:   vars,
		out:    out,
		action: e.missingAction,
		logger: e.logger,
	}
}

// Render expands tpl against vars and reports what happened.
//
// An error is returned only under MissingError, when at least one
// reference was unresolved; Result is filled in either way.
func (e *Expander) Render(tpl string, vars Lookup) (Result, error) {
	out := &bufferSink{
		buf:   buffer.New("", e.blockSize),
		limit: e.capacity,
	}
	defer out.buf.Release()

	s := e.scanner(tpl, vars, out)
	s.run()

	res := Result{
		Text:      out.buf.String(),
		Resolved:  s.found,
		Missing:   s.missing,
		Truncated: out.truncated,
	}
	if out.err != nil {
		return res, fmt.Errorf("write output: %w", out.err)
	}
	return res, e.check(s.missing)
}

// check turns unresolved names into an error under MissingError.
func (e *Expander) check(missing []string) error {
	if e.missingAction == MissingError && len(missing) > 0 {
		return &UndefinedVariableError{Names: missing}
	}
	return nil
}

// Expand expands variable references in tpl using vars.
//
// Errors are only returned when MissingAction is MissingError and
// a variable is not found.
//
// Example:
//
//	exp := NewExpander()
//	result, err := exp.Expand("Hello ${name}", vars.FromMap(map[string]string{"name": "World"}))
//	// result: "Hello World"
func (e *Expander) Expand(tpl string, vars Lookup) (string, error) {
	res, err := e.Render(tpl, vars)
	return res.Text, err
}

// MustExpand expands tpl and panics on error.
//
// Use this when you're certain all variables are present or when using
// MissingKeep/MissingEmpty which never return errors.
func (e *Expander) MustExpand(tpl string, vars Lookup) string {
	result, err := e.Expand(tpl, vars)
	if err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return result
}

// ExpandTo expands tpl into dst, writing at most len(dst)-1 content bytes
// followed by a NUL. It returns the number of content bytes written.
// The expander's capacity is ignored; len(dst) is the bound.
func (e *Expander) ExpandTo(dst []byte, tpl string, vars Lookup) (int, error) {
	out := &fixedSink{dst: dst}
	s := e.scanner(tpl, vars, out)
	s.run()
	out.terminate()
	return out.n, e.check(s.missing)
}

// ExpandAll expands every element of list, returning a new list in the
// same order and with the same slot limit. On error (with MissingError, or
// strlist.ErrTooLarge), returns nil and the first error.
func (e *Expander) ExpandAll(list *strlist.List, vars Lookup) (*strlist.List, error) {
	if list == nil {
		return nil, nil
	}

	results := strlist.New()
	results.SetLimit(list.Limit())
	for _, tpl := range list.All() {
		expanded, err := e.Expand(tpl, vars)
		if err != nil {
			return nil, err
		}
		if err := results.Add(expanded); err != nil {
			return nil, fmt.Errorf("expand list: %w", err)
		}
	}
	return results, nil
}

// ExpandMap expands every string value of m recursively, returning a new
// map. Non-string values are copied as-is; nested map[string]any and
// []any values are walked. On error (with MissingError), returns nil and
// the first error.
func (e *Expander) ExpandMap(m map[string]any, vars Lookup) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		expanded, err := e.expandValue(v, vars)
		if err != nil {
			return nil, err
		}
		result[k] = expanded
	}
	return result, nil
}

func (e *Expander) expandValue(v any, vars Lookup) (any, error) {
	switch val := v.(type) {
	case string:
		return e.Expand(val, vars)
	case map[string]any:
		return e.ExpandMap(val, vars)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			expanded, err := e.expandValue(item, vars)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	default:
		return v, nil
	}
}

// UndefinedVariableError is returned when MissingError is set and
// one or more variables are not found.
type UndefinedVariableError struct {
	// Names is the list of undefined variable names.
	Names []string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined variable: %s", e.Names[0])
	}
	return fmt.Sprintf("undefined variables: %s", strings.Join(e.Names, ", "))
}

// defaultExpander is the package-level expander with default settings.
var defaultExpander = NewExpander()

// Expand expands tpl using the default expander. Missing variables
// expand to nothing.
//
// Example:
//
//	result := template.Expand("Hello ${name}", facts)
func Expand(tpl string, vars Lookup) string {
	// Default expander never returns errors (MissingEmpty).
	result, _ := defaultExpander.Expand(tpl, vars)
	return result
}

// Interpolate expands tpl into dst using the default expander.
//
// For len(dst) == N > 0, at most N-1 content bytes are written, followed
// by a NUL at index N-1 or earlier; output past that is dropped silently.
// An empty dst receives nothing. Interpolate returns the number of content
// bytes written.
func Interpolate(dst []byte, tpl string, vars Lookup) int {
	n, _ := defaultExpander.ExpandTo(dst, tpl, vars)
	return n
}
