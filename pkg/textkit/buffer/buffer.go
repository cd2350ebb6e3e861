package buffer

import (
	"errors"
	"fmt"
)

// DefaultBlockSize is the block size used when New is given a hint of 0.
const DefaultBlockSize = 1024

// ErrTooLarge indicates an append would grow the buffer past its limit.
var ErrTooLarge = errors.New("buffer: capacity limit exceeded")

// Buffer is a growable byte string. The zero value is an empty buffer
// using DefaultBlockSize.
//
// buf always has len(buf) == Len()+1 and buf[Len()] == 0; cap(buf) is the
// allocated capacity reported by Cap.
type Buffer struct {
	buf   []byte
	block int
	limit int
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithLimit caps the capacity the buffer may grow to, in bytes.
// A limit of 0 or less means no cap.
func WithLimit(n int) Option {
	return func(b *Buffer) {
		b.limit = n
	}
}

// New creates a Buffer holding a copy of initial.
//
// block is the growth block size; 0 selects DefaultBlockSize. The initial
// capacity is at least one block. The limit set by WithLimit applies to
// later appends only; the initial contents are always accepted.
func New(initial string, block int, opts ...Option) *Buffer {
	if block <= 0 {
		block = DefaultBlockSize
	}
	b := &Buffer{block: block}
	for _, opt := range opts {
		opt(b)
	}

	b.buf = make([]byte, len(initial)+1, b.roundUp(len(initial)+1))
	copy(b.buf, initial)
	return b
}

// roundUp returns the smallest positive multiple of the block size >= n.
func (b *Buffer) roundUp(n int) int {
	if n <= 0 {
		return b.block
	}
	return ((n + b.block - 1) / b.block) * b.block
}

// reserve makes room for n more content bytes plus the terminator.
func (b *Buffer) reserve(n int) error {
	if b.block <= 0 {
		b.block = DefaultBlockSize
	}
	if b.buf == nil {
		b.buf = make([]byte, 1, b.roundUp(1))
	}
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return nil
	}

	size := b.roundUp(need)
	if b.limit > 0 && size > b.limit {
		return fmt.Errorf("%w: need %d bytes, limit %d", ErrTooLarge, size, b.limit)
	}

	grown := make([]byte, len(b.buf), size)
	copy(grown, b.buf)
	b.buf = grown
	return nil
}

// Append appends s, growing the buffer if needed.
// On error the buffer is unchanged.
func (b *Buffer) Append(s string) error {
	if err := b.reserve(len(s)); err != nil {
		return err
	}
	end := len(b.buf) - 1
	b.buf = append(b.buf[:end], s...)
	b.buf = append(b.buf, 0)
	return nil
}

// AppendBytes appends p, growing the buffer if needed.
// On error the buffer is unchanged.
func (b *Buffer) AppendBytes(p []byte) error {
	if err := b.reserve(len(p)); err != nil {
		return err
	}
	end := len(b.buf) - 1
	b.buf = append(b.buf[:end], p...)
	b.buf = append(b.buf, 0)
	return nil
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	end := len(b.buf) - 1
	b.buf[end] = c
	b.buf = append(b.buf, 0)
	return nil
}

// Appendf formats according to format and appends the result.
func (b *Buffer) Appendf(format string, args ...any) error {
	return b.Append(fmt.Sprintf(format, args...))
}

// Write implements io.Writer. A short write returns ErrTooLarge.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.AppendBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.Append(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	return b.AppendByte(c)
}

// Len returns the content length, excluding the terminator.
func (b *Buffer) Len() int {
	if b == nil || len(b.buf) == 0 {
		return 0
	}
	return len(b.buf) - 1
}

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return cap(b.buf)
}

// BlockSize returns the growth block size.
func (b *Buffer) BlockSize() int {
	if b == nil {
		return 0
	}
	return b.block
}

// String returns a copy of the contents.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Bytes returns the contents without the terminator.
// The slice aliases the buffer and is valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b == nil || len(b.buf) == 0 {
		return nil
	}
	return b.buf[:len(b.buf)-1]
}

// CString returns the contents followed by exactly one NUL byte.
// The slice aliases the buffer and is valid until the next mutation.
func (b *Buffer) CString() []byte {
	if b == nil || len(b.buf) == 0 {
		return []byte{0}
	}
	return b.buf
}

// Reset truncates the contents to zero length, keeping the allocation.
func (b *Buffer) Reset() {
	if b == nil || b.buf == nil {
		return
	}
	b.buf = b.buf[:1]
	b.buf[0] = 0
}

// Release drops the allocation. The buffer reads as empty afterwards and
// reallocates one block on the next append. Release on nil is a no-op.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.buf = nil
}
