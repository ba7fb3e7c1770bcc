package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/codepane/document"
	"github.com/iw2rmb/codepane/highlight"
	"github.com/iw2rmb/codepane/internal/grapheme"
)

// View renders the visible slice of the document: gutter cells from the
// materialized window plus the text overlay. The overlay's scroll state is
// read from the follower surfaces, which equal the input surface after every
// propagation pass.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := document.Lines(m.doc)
	var snapLines []string
	if m.highlighter != nil {
		snapshot, _ := m.state.get()
		snapLines = document.Lines(snapshot)
	}

	topRow := m.overlay.scroll.top / m.cfg.LineHeight
	left := m.overlay.scroll.left
	win := m.gutter.window

	gw := 0
	if m.cfg.ShowLineNums {
		gw = lineNumberWidth(len(lines))
	}
	cw := m.width - gw
	if cw < 0 {
		cw = 0
	}

	cursorPos := document.LineColumn(m.doc, m.cursor)

	rows := make([]string, 0, m.height)
	for r := topRow; r < topRow+m.height; r++ {
		var sb strings.Builder
		if gw > 0 {
			sb.WriteString(m.renderGutterCell(r, win, len(lines), gw, cursorPos.Line))
		}
		if r >= 0 && r < len(lines) {
			line := lines[r]
			sb.WriteString(renderLine(
				m.cfg.Style,
				line,
				m.spansForLine(r, line, snapLines),
				cursorPos.Col,
				r == cursorPos.Line,
				m.focused,
				left,
				cw,
				m.cfg.TabWidth,
			))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// spansForLine returns highlight spans for one visible row. Rows whose
// snapshot text lags the authoritative document render plain until the
// snapshot converges; highlighter errors also fall back to plain text.
func (m Model) spansForLine(row int, line string, snapLines []string) []highlight.Span {
	if m.highlighter == nil {
		return nil
	}
	if row >= len(snapLines) || snapLines[row] != line {
		return nil
	}
	spans, err := m.highlighter.HighlightLine(highlight.LineContext{Line: row, Text: line})
	if err != nil {
		return nil
	}
	return highlight.NormalizeSpans(spans, document.Len(line))
}

func renderLine(
	st Style,
	line string,
	spans []highlight.Span,
	cursorCol int,
	hasCursor bool,
	focused bool,
	left, width, tabWidth int,
) string {
	var sb strings.Builder
	used := 0
	for _, cl := range grapheme.Clusters(line) {
		if cl.Col < left {
			continue
		}

		// Advance and clip in terminal cells, never in clusters: a tab
		// costs tabWidth cells and wide clusters cost 2, so counting
		// clusters would let a row overflow the content width and shear
		// the text layer against the gutter.
		text := cl.Text
		cells := cl.Width
		if text == "\t" {
			text = strings.Repeat(" ", tabWidth)
			cells = tabWidth
		}
		if used+cells > width {
			break
		}

		style := st.Text
		if sp, ok := spanAt(spans, cl.Col); ok {
			style = sp.Style.Inherit(st.Text)
		}
		if hasCursor && focused && cursorCol >= cl.Col && cursorCol < cl.Col+cl.Runes {
			style = st.Cursor.Inherit(style)
		}

		sb.WriteString(style.Render(text))
		used += cells
	}

	// Caret past the last cluster renders as a block in the EOL cell.
	if hasCursor && focused && cursorCol >= utf8.RuneCountInString(line) &&
		cursorCol >= left && used < width {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func spanAt(spans []highlight.Span, col int) (highlight.Span, bool) {
	for _, sp := range spans {
		if col < sp.StartCol {
			break
		}
		if col < sp.EndCol {
			return sp, true
		}
	}
	return highlight.Span{}, false
}
