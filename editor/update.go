package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepane/document"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Pasted text inserts literally and never triggers bindings.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(string(msg.Runes))
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.setCursor(m.cursor - 1)
		m.followCursor()
	case key.Matches(msg, km.Right):
		m.setCursor(m.cursor + 1)
		m.followCursor()
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)

	case key.Matches(msg, km.Home):
		pos := document.LineColumn(m.doc, m.cursor)
		m.setCursor(document.Offset(m.doc, document.Pos{Line: pos.Line}))
		m.followCursor()
	case key.Matches(msg, km.End):
		pos := document.LineColumn(m.doc, m.cursor)
		pos.Col = document.LineLen(m.doc, pos.Line)
		m.setCursor(document.Offset(m.doc, pos))
		m.followCursor()

	case key.Matches(msg, km.PageUp):
		m.moveVertical(-m.pageRows())
	case key.Matches(msg, km.PageDown):
		m.moveVertical(m.pageRows())

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			doc, cur := document.DeleteRange(m.doc, m.cursor-1, m.cursor)
			m.applyEdit(doc, cur)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			doc, cur := document.DeleteRange(m.doc, m.cursor, m.cursor+1)
			m.applyEdit(doc, cur)
		}
	case key.Matches(msg, km.Enter):
		m.insertText("\n")

	default:
		if msg.Type == tea.KeyTab {
			m.insertText("\t")
			return m
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertText(string(msg.Runes))
		}
	}
	return m
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	// Wheel input scrolls the authoritative surface; followers pick the new
	// position up through propagation, never from the event itself.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelRows * m.cfg.LineHeight)
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelRows * m.cfg.LineHeight)
	}
	return m
}

// wheelRows is the number of rows one wheel notch scrolls.
const wheelRows = 3

func (m *Model) insertText(text string) {
	if m.cfg.ReadOnly || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	doc, cur := document.InsertAt(m.doc, m.cursor, text)
	m.applyEdit(doc, cur)
}

func (m *Model) moveVertical(deltaRows int) {
	pos := document.LineColumn(m.doc, m.cursor)
	pos.Line += deltaRows
	if pos.Line < 0 {
		pos.Line = 0
	}
	m.setCursor(document.Offset(m.doc, pos))
	m.followCursor()
}

func (m Model) pageRows() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}
