package cursor

import "fmt"

// Position is a zero-based row and rune column in a buffer.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Order returns a and b sorted so the first is not after the second.
func Order(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// LineLengther reports the number of lines and the rune length of each.
type LineLengther interface {
	LineCount() int
	LineLen(row int) int
}

// Clamp returns p limited to the rows of lines and to [0, len] within the row.
func Clamp(p Position, lines LineLengther) Position {
	n := lines.LineCount()
	if n == 0 {
		return Position{}
	}
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= n {
		p.Row = n - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if l := lines.LineLen(p.Row); p.Col > l {
		p.Col = l
	}
	return p
}
