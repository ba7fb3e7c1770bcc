package editor

import (
	"fmt"
	"strings"
)

// window is the contiguous half-open range [startLine, endLine) of line
// indices the gutter materializes. Lines outside the window are represented
// purely as padding so the total scrollable extent stays correct.
type window struct {
	startLine int
	endLine   int

	// topPad reserves space for lines scrolled past but not rendered;
	// bottomPad for lines below the window. Both in scroll units.
	topPad    int
	bottomPad int
}

// computeWindow derives the gutter window from scroll position and viewport
// geometry. It guarantees 0 <= startLine <= endLine <= totalLines.
//
// An unmeasured viewport (viewportHeight 0) still yields at least one line
// so initial layout renders something.
func computeWindow(totalLines, scrollTop, viewportHeight, lineHeight, overscan int) window {
	if totalLines <= 0 || lineHeight <= 0 {
		return window{}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if overscan < 0 {
		overscan = 0
	}

	start := scrollTop/lineHeight - overscan
	if start < 0 {
		start = 0
	}
	if start > totalLines {
		start = totalLines
	}

	visible := (viewportHeight+lineHeight-1)/lineHeight + 2*overscan
	if visible < 1 {
		visible = 1
	}

	end := start + visible
	if end > totalLines {
		end = totalLines
	}

	bottom := (totalLines - end) * lineHeight
	if bottom < 0 {
		bottom = 0
	}

	return window{
		startLine: start,
		endLine:   end,
		topPad:    start * lineHeight,
		bottomPad: bottom,
	}
}

// lineNumberWidth returns the gutter width for lineCount: the digit count
// plus one separator column.
func lineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// renderGutterCell renders the gutter cell for one document row. Rows
// outside the materialized window render as reserved blank space.
func (m Model) renderGutterCell(row int, win window, lineCount, width int, cursorLine int) string {
	if width <= 0 {
		return ""
	}
	if row < win.startLine || row >= win.endLine || row >= lineCount {
		return m.cfg.Style.Gutter.Render(strings.Repeat(" ", width))
	}

	numStyle := m.cfg.Style.LineNum
	if m.focused && row == cursorLine {
		numStyle = m.cfg.Style.LineNumActive
	}
	num := fmt.Sprintf("%*d", width-1, row+1)
	return numStyle.Render(num) + m.cfg.Style.Gutter.Render(" ")
}
