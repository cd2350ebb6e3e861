// Package vars provides the string-keyed map that templates are expanded
// against.
//
// A Map has no internal locking; share it across goroutines only for
// reads, or guard it with a lock of your own.
//
//	facts := vars.New()
//	facts.Set("name", "Clockwork")
//	facts.Set("multi.level.fact", "MULTILEVEL")
//
//	v, ok := facts.Get("name") // "Clockwork", true
package vars

import (
	"maps"

	"github.com/randalmurphal/textkit/pkg/textkit/strlist"
)

// Map maps keys to values. Keys are unique; Set overwrites.
// Iteration order is not defined; use Keys for a sorted view.
//
// The zero value is an empty Map ready to use. A nil *Map reads as empty
// and accepts Delete and Clear, but Set, and a Merge that adds entries,
// need a non-nil receiver and panic otherwise.
type Map struct {
	entries map[string]string
}

// New creates an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]string)}
}

// FromMap creates a Map holding a copy of m.
func FromMap(m map[string]string) *Map {
	v := &Map{entries: make(map[string]string, len(m))}
	maps.Copy(v.entries, m)
	return v
}

// Set inserts or overwrites the value for key. m must not be nil.
func (m *Map) Set(key, value string) {
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[key] = value
}

// Get returns the value for key and whether it exists.
func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Has reports whether key is set.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	delete(m.entries, key)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys sorted ascending.
func (m *Map) Keys() *strlist.List {
	keys := strlist.New()
	if m == nil {
		return keys
	}
	for k := range m.entries {
		_ = keys.Add(k)
	}
	keys.Sort(strlist.Ascending)
	return keys
}

// Merge copies every entry of other into m. Entries of other win.
// Merging an empty or nil other is a no-op, even on a nil m.
func (m *Map) Merge(other *Map) {
	if other.Len() == 0 {
		return
	}
	for k, v := range other.entries {
		m.Set(k, v)
	}
}

// ToMap returns a copy of the entries.
func (m *Map) ToMap() map[string]string {
	out := make(map[string]string, m.Len())
	if m != nil {
		maps.Copy(out, m.entries)
	}
	return out
}

// Clear removes every entry. Clear on nil is a no-op.
func (m *Map) Clear() {
	if m == nil {
		return
	}
	clear(m.entries)
}
