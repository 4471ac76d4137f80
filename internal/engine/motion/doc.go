// Package motion resolves cursor motions over read-only text.
//
// Every function here is pure: it takes a Text and a starting position and
// returns the position the motion lands on. Nothing is mutated, so the same
// functions serve plain cursor movement and operator ranges alike.
//
// Motions are described by a Motion value that records how an operator
// should treat the covered span:
//
//   - Type: charwise motions cover the characters between the two ends,
//     linewise motions cover whole rows.
//   - Inclusive: whether the character under the landing position is part
//     of the span (e, E, $, f, t and % are inclusive).
//
// Word motions come in two flavors. Lowercase motions (w, b, e) treat both
// punctuation and whitespace as separators; uppercase motions (W, B, E)
// only split on whitespace.
package motion
