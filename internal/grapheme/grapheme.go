// Package grapheme provides grapheme-cluster segmentation for rendering.
//
// The editor's document model addresses text by rune columns, but rendering
// must never split a multi-rune cluster (combining marks, emoji sequences),
// so the render path walks clusters annotated with their rune columns and
// terminal cell widths.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster tagged with its position in the line.
type Cluster struct {
	Text string
	// Col is the starting rune column of the cluster within the line.
	Col int
	// Runes is the cluster's length in runes.
	Runes int
	// Width is the cluster's width in terminal cells. CJK and emoji
	// clusters occupy 2 cells; combining sequences collapse to the width
	// of their base.
	Width int
}

// Clusters segments text into grapheme clusters in visual order.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	col := 0
	for g.Next() {
		runes := g.Runes()
		s := g.Str()
		out = append(out, Cluster{Text: s, Col: col, Runes: len(runes), Width: CellWidth(s)})
		col += len(runes)
	}
	return out
}

// CellWidth returns the terminal cell width of one cluster. runewidth sums
// per-rune widths, which zeroes out some emoji sequences, so uniseg's
// cluster-aware width backstops it.
func CellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fb := uniseg.StringWidth(text); fb > w {
			w = fb
		}
	}
	return w
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}
