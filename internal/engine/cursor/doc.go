// Package cursor provides positions and visual selections for the modal editor.
//
// Positions are (Row, Col) pairs where Col counts runes, not bytes, so a
// column always addresses a whole Unicode scalar in a line.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where visual mode was entered
//   - Head: The current cursor position, which follows motions
//
// Start and End return the normalized bounds regardless of direction.
// The Kind decides how the bounds are interpreted: characterwise spans,
// whole lines, or a rectangular block of columns.
//
// Position and Selection are immutable value types and safe for
// concurrent use.
package cursor
