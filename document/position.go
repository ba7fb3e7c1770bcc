package document

import (
	"strings"
	"unicode/utf8"
)

// Pos points into the document by (line, column). Line and Col are 0-based
// and Col is measured in runes within the line.
type Pos struct {
	Line int
	Col  int
}

// Len returns the document length in runes.
func Len(doc string) int {
	return utf8.RuneCountInString(doc)
}

// Lines splits doc into logical lines. The empty document has one empty line.
func Lines(doc string) []string {
	return strings.Split(doc, "\n")
}

// LineCount returns the number of logical lines in doc, at least 1.
func LineCount(doc string) int {
	return strings.Count(doc, "\n") + 1
}

// ClampOffset clamps offset into [0, Len(doc)].
func ClampOffset(doc string, offset int) int {
	if offset < 0 {
		return 0
	}
	if n := Len(doc); offset > n {
		return n
	}
	return offset
}

// LineColumn maps a flat rune offset to a (line, column) position.
//
// It scans line lengths once, counting each line's rune length plus one for
// its terminator, until the running total passes offset. An offset equal to
// Len(doc) maps to the end of the last line; out-of-range offsets are
// clamped, never rejected.
func LineColumn(doc string, offset int) Pos {
	offset = ClampOffset(doc, offset)

	before := 0
	lines := Lines(doc)
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		if offset <= before+n {
			return Pos{Line: i, Col: offset - before}
		}
		before += n + 1
	}

	last := len(lines) - 1
	return Pos{Line: last, Col: utf8.RuneCountInString(lines[last])}
}

// Offset maps a position back to a flat rune offset.
//
// Out-of-range lines and columns are clamped into the document, so
// Offset(doc, LineColumn(doc, o)) == ClampOffset(doc, o) for any o.
func Offset(doc string, p Pos) int {
	lines := Lines(doc)
	line := p.Line
	if line < 0 {
		line = 0
	}
	if line > len(lines)-1 {
		line = len(lines) - 1
	}

	off := 0
	for i := 0; i < line; i++ {
		off += utf8.RuneCountInString(lines[i]) + 1
	}

	col := p.Col
	if col < 0 {
		col = 0
	}
	if n := utf8.RuneCountInString(lines[line]); col > n {
		col = n
	}
	return off + col
}

// LineLen returns the rune length of line row, or 0 when row is out of range.
func LineLen(doc string, row int) int {
	lines := Lines(doc)
	if row < 0 || row >= len(lines) {
		return 0
	}
	return utf8.RuneCountInString(lines[row])
}
