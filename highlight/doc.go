// Package highlight provides syntax highlighting support for codepane: the
// Highlighter contract consumed by the editor, a chroma-backed implementation
// of it, and the size-tiered debounce scheduler that decides when the
// editor's highlight snapshot is recomputed.
package highlight
