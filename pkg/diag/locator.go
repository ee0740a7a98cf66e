package diag

import "strings"

// Locator converts 1-based line/column positions (as reported by yaml.v3)
// into byte offsets within a source string, so a Diagnostic's Span can
// always address the original input regardless of which phase raised it.
type Locator struct {
	lineStarts []int
}

// NewLocator precomputes the byte offset of the start of every line in src.
func NewLocator(src string) *Locator {
	starts := []int{0}
	for i, r := range src {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Locator{lineStarts: starts}
}

// Offset converts a 1-based (line, column) pair into a byte offset. Out of
// range lines/columns clamp to the nearest valid offset rather than
// panicking, since the caller is usually translating an approximate
// position reported by a third-party parser.
func (l *Locator) Offset(line, column int) int {
	if line < 1 {
		line = 1
	}
	idx := line - 1
	if idx >= len(l.lineStarts) {
		idx = len(l.lineStarts) - 1
	}
	offset := l.lineStarts[idx]
	if column > 1 {
		offset += column - 1
	}
	return offset
}

// Span builds a zero-width Span at the given 1-based line/column.
func (l *Locator) Span(file string, line, column int) Span {
	off := l.Offset(line, column)
	return Span{File: file, Start: off, End: off}
}

// LineColumn does the inverse of Offset: given a byte offset, it returns
// the 1-based line and column. It's used by the SVG debug renderer to find
// which line a span falls on.
func (l *Locator) LineColumn(offset int) (line, column int) {
	line = 1
	for i := len(l.lineStarts) - 1; i >= 0; i-- {
		if l.lineStarts[i] <= offset {
			line = i + 1
			column = offset - l.lineStarts[i] + 1
			return
		}
	}
	return 1, 1
}

// LineText returns the text of the given 1-based line, excluding its
// trailing newline.
func (l *Locator) LineText(src string, line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(l.lineStarts) {
		return ""
	}
	start := l.lineStarts[idx]
	end := len(src)
	if idx+1 < len(l.lineStarts) {
		end = l.lineStarts[idx+1]
	}
	if end > len(src) {
		end = len(src)
	}
	return strings.TrimRight(src[start:end], "\n")
}
