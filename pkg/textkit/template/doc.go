/*
Package template substitutes variable references inside arbitrary text.

# Overview

template scans text for $name and ${name} references and replaces each
with its value from a Lookup such as *vars.Map. It is designed for
configuration files, message-of-the-day banners and other small text
templates rendered against a set of facts.

# Basic Usage

Expand a template with the package-level function. Unknown references
expand to nothing:

	facts := vars.New()
	facts.Set("name", "Clockwork")
	result := template.Expand("Hello $name, ${unknown}!", facts)
	// result: "Hello Clockwork, !"

# Reference Syntax

  - $name reads the longest run of letters, digits, '_', '-' and '.'.
  - ${name} reads every byte up to the closing brace, verbatim.
  - \x copies x through unchanged, so \$name is the literal text "$name".
  - A '$' that starts neither form is dropped.

A ${ with no closing brace is unterminated: it produces no output
(MissingKeep copies it through as-is).

# Bounded Output

Interpolate writes into a fixed byte slice, always leaving room for a NUL
terminator. Output that does not fit is dropped silently while the scan
runs to completion:

	buf := make([]byte, 8)
	n := template.Interpolate(buf, "$ref is 16 characters long", facts)
	// buf[:n] == "1234567", buf[n] == 0   (ref -> "1234567890abcdef")

An Expander built WithCapacity applies the same bound to Expand and
reports truncation through Render.

# Missing Variables

	exp := template.NewExpander(template.WithMissingAction(template.MissingKeep))
	result, _ := exp.Expand("Hello ${missing}", facts)
	// result: "Hello ${missing}"

	exp = template.NewExpander(template.WithMissingAction(template.MissingError))
	_, err := exp.Expand("Hello ${missing}", facts)
	// err: "undefined variable: missing"

# Thread Safety

Expander is safe for concurrent use after construction.
Package-level functions use a shared default expander.
*/
package template
