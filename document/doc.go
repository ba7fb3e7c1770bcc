// Package document implements the pure position model for codepane.
//
// A document is a plain string owned by the host application; the editor is
// a controlled mirror of it and never diverges from the value it is given.
// Offsets are 0-based rune counts from the start of the document. Positions
// are 0-based (Line, Col) pairs, with Col in runes.
package document
