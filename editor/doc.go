// Package editor provides a Bubble Tea code editor component that keeps
// three renderings of one document in lockstep: the interactive text
// surface, a syntax-highlighted overlay computed from a debounced snapshot,
// and a virtualized line-number gutter.
//
// The component is controlled: the host owns the document text and feeds it
// in through Config.Value and Model.SetValue, and the editor reports edits
// through Config.OnChange and caret movement through Config.OnCursorChange.
package editor
