package strlist

import "strings"

// SplitMode controls how Split treats adjacent delimiters.
type SplitMode int

const (
	// SplitNormal keeps an empty field between every pair of adjacent
	// delimiters, and before a leading or after a trailing delimiter.
	SplitNormal SplitMode = iota

	// SplitGreedy collapses runs of delimiters into one split point and
	// never produces empty fields.
	SplitGreedy
)

// Split breaks the first n bytes of text on delim. A negative n, or one
// larger than len(text), selects the whole text.
//
// An empty input yields an empty list. Text without delim, or an empty
// delim, yields a single element holding the input.
func Split(text string, n int, delim string, mode SplitMode) *List {
	if n < 0 || n > len(text) {
		n = len(text)
	}
	text = text[:n]

	// New lists are unbounded, so Add cannot fail below.
	l := New()
	if text == "" {
		return l
	}
	if delim == "" {
		_ = l.Add(text)
		return l
	}

	for {
		i := strings.Index(text, delim)
		if i < 0 {
			break
		}
		if i > 0 || mode == SplitNormal {
			_ = l.Add(text[:i])
		}
		text = text[i+len(delim):]
	}
	if text != "" || mode == SplitNormal {
		_ = l.Add(text)
	}
	return l
}
