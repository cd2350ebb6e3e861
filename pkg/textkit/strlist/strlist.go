package strlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// BlockSize is the number of slots a List grows by.
const BlockSize = 16

// ErrNotFound indicates the value is not in the list.
var ErrNotFound = errors.New("strlist: value not found")

// ErrTooLarge indicates a growth would take the list past its slot limit.
var ErrTooLarge = errors.New("strlist: slot limit exceeded")

// List is an ordered list of strings.
//
// items holds exactly Len() elements; slots is the capacity and is always
// greater than len(items), leaving room for the sentinel.
type List struct {
	items []string
	slots int
	limit int
}

// New creates a List holding copies of initial, in order.
func New(initial ...string) *List {
	l := &List{}
	_ = l.grow(len(initial)) // no limit yet
	l.items = append(l.items, initial...)
	return l
}

// FromTerminated creates a List from a sentinel-terminated sequence,
// copying entries up to the first nil.
func FromTerminated(initial []*string) *List {
	l := New()
	for _, s := range initial {
		if s == nil {
			break
		}
		_ = l.Add(*s) // unbounded
	}
	return l
}

// slotsFor returns the smallest block multiple that holds n elements
// plus the sentinel.
func slotsFor(n int) int {
	return ((n + 1 + BlockSize - 1) / BlockSize) * BlockSize
}

// grow ensures there is room for n elements plus the sentinel. The list
// is left unchanged when the limit would be exceeded.
func (l *List) grow(n int) error {
	if n < l.slots {
		return nil
	}
	slots := slotsFor(n)
	if l.limit > 0 && slots > l.limit {
		return fmt.Errorf("%w: need %d slots, limit %d", ErrTooLarge, slots, l.limit)
	}
	items := make([]string, len(l.items), slots)
	copy(items, l.items)
	l.items = items
	l.slots = slots
	return nil
}

// SetLimit caps the number of slots, sentinel included, the list may grow
// to. A limit of 0 or less means no cap. Slots already allocated are kept.
func (l *List) SetLimit(n int) {
	l.limit = n
}

// Limit returns the slot limit, or 0 when the list is unbounded.
func (l *List) Limit() int {
	if l == nil {
		return 0
	}
	return l.limit
}

// Dup returns a deep copy of l, including its limit.
func (l *List) Dup() *List {
	d := New(l.Strings()...)
	d.limit = l.Limit()
	return d
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Cap returns the number of slots, including the sentinel slot.
func (l *List) Cap() int {
	if l == nil {
		return 0
	}
	return l.slots
}

// At returns the element at index i. It reports false at the sentinel
// index Len() and for any index outside the list.
func (l *List) At(i int) (string, bool) {
	if l == nil || i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

// Strings returns a copy of the elements.
func (l *List) Strings() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l == nil {
			return
		}
		for i, s := range l.items {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Add appends a copy of v. It returns ErrTooLarge and leaves the list
// unchanged when the slot limit would be exceeded.
func (l *List) Add(v string) error {
	if err := l.grow(len(l.items) + 1); err != nil {
		return err
	}
	l.items = append(l.items, strings.Clone(v))
	return nil
}

// AddAll appends copies of every element of src. src is not modified,
// even when it is l itself. Either every element is added or, on
// ErrTooLarge, none is.
func (l *List) AddAll(src *List) error {
	add := src.Strings()
	if err := l.grow(len(l.items) + len(add)); err != nil {
		return err
	}
	l.items = append(l.items, add...)
	return nil
}

// index returns the position of the first element equal to v, or -1.
func (l *List) index(v string) int {
	for i, s := range l.items {
		if s == v {
			return i
		}
	}
	return -1
}

// Remove removes the first element equal to v, preserving the order of
// the rest. It returns ErrNotFound and leaves the list unchanged when v
// is absent.
func (l *List) Remove(v string) error {
	i := l.index(v)
	if i < 0 {
		return ErrNotFound
	}
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = ""
	l.items = l.items[:len(l.items)-1]
	return nil
}

// RemoveAll removes one occurrence from l for each element of src.
// Elements of src that are not in l are ignored.
func (l *List) RemoveAll(src *List) error {
	for _, v := range src.Strings() {
		if err := l.Remove(v); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

// Search reports whether v is in the list.
func (l *List) Search(v string) bool {
	if l == nil {
		return false
	}
	return l.index(v) >= 0
}

// Join concatenates the elements separated by delim.
func (l *List) Join(delim string) string {
	return join(l.Strings(), delim)
}

// Release drops every element and the backing storage. The list reads as
// empty afterwards. Release on nil is a no-op.
func (l *List) Release() {
	if l == nil {
		return
	}
	clear(l.items)
	l.items = nil
	l.slots = 0
}
