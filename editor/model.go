package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepane/document"
	"github.com/iw2rmb/codepane/highlight"
)

// Model is a Bubble Tea component rendering a controlled document with a
// scroll-synchronized highlight overlay and virtualized line-number gutter.
type Model struct {
	cfg Config

	// doc mirrors the host's value; cursor is a flat rune offset into it,
	// always within [0, len].
	doc    string
	cursor int

	focused bool
	width   int
	height  int

	input   *textLayer
	overlay *highlightLayer
	gutter  *gutterLayer
	sync    *syncer

	state *overlayState
	sched *highlight.Scheduler

	highlighter highlight.Highlighter
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = 1
	}
	if cfg.Overscan == 0 {
		cfg.Overscan = DefaultOverscan
	} else if cfg.Overscan < 0 {
		cfg.Overscan = 0
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}

	m := Model{
		cfg:     cfg,
		doc:     cfg.Value,
		cursor:  0,
		focused: true,
		width:   cfg.Width,
		height:  cfg.Height,

		input:   &textLayer{},
		overlay: &highlightLayer{},

		state: newOverlayState(cfg.Value),
	}

	m.gutter = &gutterLayer{
		totalLines: document.LineCount(cfg.Value),
		lineHeight: cfg.LineHeight,
		overscan:   cfg.Overscan,
	}
	m.sync = &syncer{
		followers:  []follower{m.overlay, m.gutter},
		onViewport: m.gutter.recompute,
	}

	state := m.state
	onSnapshot := cfg.OnSnapshot
	m.sched = highlight.NewScheduler(cfg.Tiers, func(doc string) {
		state.set(doc)
		if onSnapshot != nil {
			onSnapshot()
		}
	})

	m.highlighter = cfg.Highlighter
	if m.highlighter == nil && cfg.Language != "" {
		styleName := cfg.HighlightStyle
		if styleName == "" {
			styleName = "monokai"
		}
		m.highlighter = highlight.NewChroma(cfg.Language, styleName)
	}

	m.propagate()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg), nil
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	}
	return m, nil
}

// Value returns the current document text.
func (m Model) Value() string { return m.doc }

// SetValue replaces the document wholesale with a host-supplied value.
// It does not invoke OnChange: the host already knows.
func (m Model) SetValue(text string) Model {
	if text == m.doc {
		return m
	}
	m.doc = text
	m.gutter.totalLines = document.LineCount(text)
	m.setCursor(document.ClampOffset(text, m.cursor))
	m.sched.Schedule(text)
	m.clampScroll()
	m.propagate()
	return m
}

// Cursor returns the caret's flat rune offset.
func (m Model) Cursor() int { return m.cursor }

// SetCursor moves the caret to a flat rune offset, clamped into the document.
func (m Model) SetCursor(offset int) Model {
	m.setCursor(offset)
	m.followCursor()
	return m
}

// CursorPosition returns the caret as a (line, column) position.
func (m Model) CursorPosition() document.Pos {
	return document.LineColumn(m.doc, m.cursor)
}

// Snapshot returns the current highlight snapshot text.
func (m Model) Snapshot() string {
	doc, _ := m.state.get()
	return doc
}

// SnapshotVersion increments on every highlight snapshot update.
func (m Model) SnapshotVersion() uint64 {
	_, v := m.state.get()
	return v
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.clampScroll()
	m.propagate()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// ScrollTop returns the input surface's vertical scroll offset in scroll units.
func (m Model) ScrollTop() int { return m.input.scroll.top }

// ScrollLeft returns the input surface's horizontal scroll offset in columns.
func (m Model) ScrollLeft() int { return m.input.scroll.left }

// Close cancels any pending highlight update. A scheduler timer firing after
// Close is a no-op, so teardown never mutates released state.
func (m Model) Close() {
	m.sched.Close()
}

func (m *Model) setCursor(offset int) {
	offset = document.ClampOffset(m.doc, offset)
	if offset == m.cursor {
		return
	}
	m.cursor = offset
	if m.cfg.OnCursorChange != nil {
		m.cfg.OnCursorChange(offset)
	}
}

// applyEdit installs an edited document. The host observes the new text
// before the new cursor position, never after.
func (m *Model) applyEdit(doc string, cursor int) {
	if doc != m.doc {
		m.doc = doc
		m.gutter.totalLines = document.LineCount(doc)
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(doc)
		}
		m.sched.Schedule(doc)
	}
	m.setCursor(cursor)
	m.followCursor()
}

// viewportHeightUnits is the viewport height in scroll units.
func (m Model) viewportHeightUnits() int {
	return m.height * m.cfg.LineHeight
}

func (m Model) contentWidth() int {
	w := m.width
	if m.cfg.ShowLineNums {
		w -= lineNumberWidth(m.gutter.totalLines)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// propagate pushes the input surface's scroll state to the follower surfaces
// and recomputes the gutter window, synchronously in the current pass.
func (m *Model) propagate() {
	s := m.input.scroll
	m.sync.propagate(s.top, s.left, m.viewportHeightUnits())
}

func (m *Model) clampScroll() {
	lh := m.cfg.LineHeight
	maxTop := m.gutter.totalLines*lh - m.viewportHeightUnits()
	if maxTop < 0 {
		maxTop = 0
	}
	if m.input.scroll.top > maxTop {
		m.input.scroll.top = maxTop
	}
	if m.input.scroll.top < 0 {
		m.input.scroll.top = 0
	}
	if m.input.scroll.left < 0 {
		m.input.scroll.left = 0
	}
}

// scrollBy moves the input surface vertically by delta scroll units and
// propagates to followers.
func (m *Model) scrollBy(delta int) {
	m.input.scroll.top += delta
	m.clampScroll()
	m.propagate()
}

// followCursor keeps the caret inside the viewport, adjusting the input
// surface's scroll state and propagating in the same pass.
func (m *Model) followCursor() {
	if m.height <= 0 {
		m.propagate()
		return
	}

	lh := m.cfg.LineHeight
	pos := document.LineColumn(m.doc, m.cursor)

	topRow := m.input.scroll.top / lh
	switch {
	case pos.Line < topRow:
		m.input.scroll.top = pos.Line * lh
	case pos.Line >= topRow+m.height:
		m.input.scroll.top = (pos.Line - m.height + 1) * lh
	}

	if cw := m.contentWidth(); cw > 0 {
		left := m.input.scroll.left
		switch {
		case pos.Col < left:
			m.input.scroll.left = pos.Col
		case pos.Col >= left+cw:
			m.input.scroll.left = pos.Col - cw + 1
		}
	}

	m.clampScroll()
	m.propagate()
}
