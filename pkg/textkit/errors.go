package textkit

import (
	"errors"
	"fmt"
)

// ErrInvalidFact indicates a key=value assignment without '=' or with an
// empty key.
var ErrInvalidFact = errors.New("invalid fact assignment")

// RenderError wraps a failed render with the template it came from.
type RenderError struct {
	// Template is the name of the template being rendered.
	Template string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// StoreError wraps errors from fact store operations.
type StoreError struct {
	// Name is the fact set involved.
	Name string
	// Op is the operation that failed ("save", "load").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("fact store %s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StoreError) Unwrap() error {
	return e.Err
}
