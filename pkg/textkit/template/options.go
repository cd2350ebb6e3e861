package template

import "log/slog"

// MissingAction specifies how to handle missing variables.
type MissingAction int

const (
	// MissingEmpty expands a missing variable to nothing.
	// This is the default behavior.
	MissingEmpty MissingAction = iota

	// MissingKeep copies the reference through as written.
	MissingKeep

	// MissingError expands a missing variable to nothing and reports it
	// in an UndefinedVariableError.
	MissingError
)

// String returns the action name as used in configuration.
func (a MissingAction) String() string {
	switch a {
	case MissingEmpty:
		return "empty"
	case MissingKeep:
		return "keep"
	case MissingError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseMissingAction parses "empty", "keep" or "error".
func ParseMissingAction(s string) (MissingAction, bool) {
	switch s {
	case "", "empty":
		return MissingEmpty, true
	case "keep":
		return MissingKeep, true
	case "error":
		return MissingError, true
	default:
		return MissingEmpty, false
	}
}

// Option configures an Expander.
type Option func(*Expander)

// WithMissingAction sets how missing variables are handled.
//
// Default: MissingEmpty
//
// Example:
//
//	exp := NewExpander(WithMissingAction(MissingError))
//	_, err := exp.Expand("${missing}", nil)
//	// err: "undefined variable: missing"
func WithMissingAction(action MissingAction) Option {
	return func(e *Expander) {
		e.missingAction = action
	}
}

// WithCapacity bounds Expand and Render output to n-1 bytes, as if writing
// into an n-byte buffer that keeps its last byte for a terminator.
//
// Default: 0 (unbounded)
//
// Example:
//
//	exp := NewExpander(WithCapacity(8))
//	result, _ := exp.Expand("0123456789", nil)
//	// result: "0123456"
func WithCapacity(n int) Option {
	return func(e *Expander) {
		e.capacity = max(n, 0)
	}
}

// WithBlockSize sets the growth block size of the output buffer used by
// Expand and Render.
//
// Default: 0 (buffer.DefaultBlockSize)
func WithBlockSize(n int) Option {
	return func(e *Expander) {
		e.blockSize = max(n, 0)
	}
}

// WithLogger logs each unresolved reference at debug level.
//
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}
