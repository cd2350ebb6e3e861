package template

import (
	"log/slog"
	"strings"

	"github.com/randalmurphal/textkit/pkg/textkit/buffer"
	"github.com/randalmurphal/textkit/pkg/textkit/observability"
)

// Lookup resolves reference names. *vars.Map implements it.
type Lookup interface {
	Get(key string) (string, bool)
}

// state is a scanner state.
type state int

const (
	stateLiteral state = iota
	stateEscape
	stateSimpleRef
	stateBraceRef
)

// isIdent reports whether c may appear in a $name reference.
func isIdent(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.':
		return true
	}
	return false
}

// sink receives scanner output. Implementations drop what does not fit.
type sink interface {
	put(s string)
	putByte(c byte)
}

// fixedSink writes into a caller buffer, keeping the last byte for a NUL.
type fixedSink struct {
	dst       []byte
	n         int
	truncated bool
}

func (f *fixedSink) room() int {
	return len(f.dst) - 1 - f.n
}

func (f *fixedSink) put(s string) {
	if s == "" {
		return
	}
	room := f.room()
	if len(s) > room {
		f.truncated = true
		if room <= 0 {
			return
		}
		s = s[:room]
	}
	f.n += copy(f.dst[f.n:], s)
}

func (f *fixedSink) putByte(c byte) {
	if f.room() <= 0 {
		f.truncated = true
		return
	}
	f.dst[f.n] = c
	f.n++
}

// terminate writes the NUL after the content, if dst has any room at all.
func (f *fixedSink) terminate() {
	if len(f.dst) > 0 {
		f.dst[f.n] = 0
	}
}

// bufferSink appends to a Buffer, optionally bounded to limit-1 bytes.
type bufferSink struct {
	buf       *buffer.Buffer
	limit     int
	truncated bool
	err       error
}

func (b *bufferSink) put(s string) {
	if s == "" || b.err != nil {
		return
	}
	if b.limit > 0 {
		room := b.limit - 1 - b.buf.Len()
		if len(s) > room {
			b.truncated = true
			if room <= 0 {
				return
			}
			s = s[:room]
		}
	}
	b.err = b.buf.Append(s)
}

func (b *bufferSink) putByte(c byte) {
	if b.err != nil {
		return
	}
	if b.limit > 0 && b.buf.Len() >= b.limit-1 {
		b.truncated = true
		return
	}
	b.err = b.buf.AppendByte(c)
}

// scanner runs the reference state machine over one template.
type scanner struct {
	tpl     string
	vars    Lookup
	out     sink
	action  MissingAction
	logger  *slog.Logger
	found   int
	missing []string
}

// run scans the whole template. It always consumes the entire input.
func (s *scanner) run() {
	tpl := s.tpl
	st := stateLiteral
	i := 0

	for i < len(tpl) {
		switch st {
		case stateLiteral:
			j := i
			for j < len(tpl) && tpl[j] != '\\' && tpl[j] != '$' {
				j++
			}
			s.out.put(tpl[i:j])
			if j == len(tpl) {
				return
			}
			i = j + 1
			if tpl[j] == '\\' {
				st = stateEscape
				continue
			}
			switch {
			case i < len(tpl) && tpl[i] == '{':
				i++
				st = stateBraceRef
			case i < len(tpl) && isIdent(tpl[i]):
				st = stateSimpleRef
			}
			// A bare '$' is dropped; the next byte is rescanned as literal.

		case stateEscape:
			s.out.putByte(tpl[i])
			i++
			st = stateLiteral

		case stateSimpleRef:
			j := i
			for j < len(tpl) && isIdent(tpl[j]) {
				j++
			}
			s.resolve(tpl[i:j], tpl[i-1:j])
			i = j
			st = stateLiteral

		case stateBraceRef:
			end := strings.IndexByte(tpl[i:], '}')
			if end < 0 {
				// Unterminated: the rest of the input is the reference.
				s.miss(tpl[i:], tpl[i-2:])
				return
			}
			s.resolve(tpl[i:i+end], tpl[i-2:i+end+1])
			i += end + 1
			st = stateLiteral
		}
	}
	// A "${" at the very end is an unterminated, empty reference. A
	// trailing '\' leaves the scanner in stateEscape and is dropped.
	if st == stateBraceRef {
		s.miss("", tpl[i-2:])
	}
}

// resolve emits the value for key, or handles it as missing. raw is the
// reference exactly as written in the template.
func (s *scanner) resolve(key, raw string) {
	if s.vars != nil {
		if v, ok := s.vars.Get(key); ok {
			s.found++
			s.out.put(v)
			return
		}
	}
	s.miss(key, raw)
}

func (s *scanner) miss(key, raw string) {
	s.missing = append(s.missing, key)
	observability.LogMissingReference(s.logger, key)
	if s.action == MissingKeep {
		s.out.put(raw)
	}
}
