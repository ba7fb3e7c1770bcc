package editor

// scrollState is a surface's scroll offset. top is in scroll units
// (LineHeight multiples for row-aligned positions); left is in rune columns.
type scrollState struct {
	top  int
	left int
}

// follower is a surface whose scroll position is driven by the authoritative
// input surface. Followers never accept scroll input themselves.
type follower interface {
	setScroll(top, left int)
}

// syncer propagates the input surface's scroll state to every follower in
// the same event-handling pass, with direct assignment and no smoothing, and
// reports the resulting (scrollTop, viewport height) pair for gutter window
// recomputation.
type syncer struct {
	followers  []follower
	onViewport func(scrollTop, viewportHeight int)
}

func (s *syncer) propagate(top, left, viewportHeight int) {
	for _, f := range s.followers {
		f.setScroll(top, left)
	}
	if s.onViewport != nil {
		s.onViewport(top, viewportHeight)
	}
}

// textLayer is the authoritative input surface. Its scroll state is the
// single source of truth; all mutations go through Model so propagation to
// followers happens in the same pass.
type textLayer struct {
	scroll scrollState
}

// highlightLayer mirrors the document with colorized text. Its scroll state
// is programmatically driven and must always equal the input surface's.
type highlightLayer struct {
	scroll scrollState
}

func (l *highlightLayer) setScroll(top, left int) {
	l.scroll = scrollState{top: top, left: left}
}

// gutterLayer renders the virtualized line numbers. It follows vertical
// scroll only; horizontal scroll never moves the gutter.
type gutterLayer struct {
	scroll scrollState
	window window

	totalLines int
	lineHeight int
	overscan   int
}

func (g *gutterLayer) setScroll(top, _ int) {
	g.scroll.top = top
}

func (g *gutterLayer) recompute(scrollTop, viewportHeight int) {
	g.window = computeWindow(g.totalLines, scrollTop, viewportHeight, g.lineHeight, g.overscan)
}
