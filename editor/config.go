package editor

import "github.com/iw2rmb/codepane/highlight"

// DefaultOverscan is the number of extra gutter rows materialized beyond the
// visible range on each side when Config.Overscan is zero.
const DefaultOverscan = 5

// DefaultTabWidth is the tab expansion width used when Config.TabWidth is zero.
const DefaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Value is the initial document text. The editor mirrors the host's
	// value; it never holds an independent copy of ground truth.
	Value string

	// Language selects the highlighting ruleset when Highlighter is nil;
	// it is a chroma lexer name or alias ("go", "python", ...). Empty
	// disables highlighting.
	Language string
	// HighlightStyle is the chroma style name used with Language.
	// Empty means "monokai".
	HighlightStyle string
	// Highlighter overrides Language with a custom implementation.
	Highlighter highlight.Highlighter

	// Tiers tunes the highlight debounce; the zero value uses
	// highlight.DefaultTiers.
	Tiers highlight.Tiers

	Width  int
	Height int

	ShowLineNums bool
	ReadOnly     bool

	Style  Style
	KeyMap KeyMap

	// LineHeight is the height of one document line in scroll units.
	// Terminal hosts leave it zero (treated as 1); hosts measuring in
	// pixels set their font line height.
	LineHeight int
	// Overscan is the number of extra gutter rows rendered beyond the
	// viewport on each side. Zero uses DefaultOverscan; negative disables
	// overscan entirely.
	Overscan int
	// TabWidth is the tab expansion width. Zero uses DefaultTabWidth.
	TabWidth int

	// OnChange is invoked with the full new text on every edit, before
	// OnCursorChange for the same keystroke.
	OnChange func(text string)
	// OnCursorChange is invoked with the flat rune offset of the caret on
	// every caret movement.
	OnCursorChange func(offset int)
	// OnSnapshot is invoked after each highlight snapshot update. For
	// deferred updates it runs on the scheduler's timer goroutine; hosts
	// typically forward it into their program as a message.
	OnSnapshot func()
}
