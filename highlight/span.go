package highlight

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Span styles the half-open rune column range [StartCol, EndCol) within a
// single line.
type Span struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// LineContext describes one line handed to a Highlighter.
type LineContext struct {
	Line int
	Text string
}

// Highlighter computes style spans for one line of the highlight snapshot.
//
// An error disables highlighting for that line; the editor falls back to
// plain text rather than surfacing the failure.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]Span, error)
}

// NormalizeSpans clamps spans into [0, lineLen], drops empty ones, sorts by
// start column, and resolves overlaps deterministically by dropping any span
// that overlaps an earlier one.
func NormalizeSpans(spans []Span, lineLen int) []Span {
	if len(spans) == 0 {
		return nil
	}
	if lineLen < 0 {
		lineLen = 0
	}

	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, Span{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	merged := make([]Span, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
