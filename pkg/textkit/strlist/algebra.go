package strlist

import (
	"slices"
	"strings"

	"github.com/randalmurphal/textkit/pkg/textkit/buffer"
)

// Direction selects the sort order.
type Direction int

const (
	// Ascending sorts by increasing byte value.
	Ascending Direction = iota

	// Descending sorts by decreasing byte value.
	Descending
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "unknown"
	}
}

// compareFor returns the element comparison for a direction.
func compareFor(dir Direction) func(a, b string) int {
	if dir == Descending {
		return func(a, b string) int { return strings.Compare(b, a) }
	}
	return strings.Compare
}

// Sort sorts the list in place. The sort is stable and compares bytes,
// so it does not depend on locale or Unicode normalization.
func (l *List) Sort(dir Direction) {
	if l.Len() < 2 {
		return
	}
	slices.SortStableFunc(l.items, compareFor(dir))
}

// Uniq sorts the list ascending and collapses adjacent duplicates.
func (l *List) Uniq() {
	if l.Len() == 0 {
		return
	}
	l.Sort(Ascending)
	l.items = slices.Compact(l.items)
}

// Diff reports whether a and b differ as multisets. Two lists holding the
// same strings with the same per-string counts are not different,
// regardless of order. Diff(a, b) == Diff(b, a).
func Diff(a, b *List) bool {
	if a.Len() != b.Len() {
		return true
	}
	x, y := a.Strings(), b.Strings()
	slices.Sort(x)
	slices.Sort(y)
	return !slices.Equal(x, y)
}

// Equal reports whether a and b hold the same multiset of strings.
func Equal(a, b *List) bool {
	return !Diff(a, b)
}

// join concatenates items separated by delim into a buffer sized for the
// whole result.
func join(items []string, delim string) string {
	if len(items) == 0 {
		return ""
	}
	size := len(delim) * (len(items) - 1)
	for _, s := range items {
		size += len(s)
	}

	b := buffer.New("", size+1)
	defer b.Release()
	for i, s := range items {
		if i > 0 {
			_ = b.Append(delim)
		}
		_ = b.Append(s)
	}
	return b.String()
}
