package motion

// SearchKind distinguishes f/F from t/T.
type SearchKind uint8

const (
	// Find lands on the target character.
	Find SearchKind = iota
	// Till stops one character short of the target.
	Till
)

// String returns the search kind name.
func (k SearchKind) String() string {
	if k == Till {
		return "till"
	}
	return "find"
}

// CharSearch is an in-line character search such as "fx" or "T(".
type CharSearch struct {
	Kind    SearchKind
	Char    rune
	Forward bool
}

// Reverse returns the same search in the opposite direction, as used by ','.
func (cs CharSearch) Reverse() CharSearch {
	cs.Forward = !cs.Forward
	return cs
}

// Inclusive reports whether an operator covers the landing character.
// Forward searches are inclusive, backward ones exclusive.
func (cs CharSearch) Inclusive() bool {
	return cs.Forward
}

// FindChar searches the current line for cs.Char. A repeat search starts
// far enough from the cursor that a till search does not find the
// character it is already resting against. It returns false when the
// character is not found.
func FindChar(t Text, pos Position, cs CharSearch, repeat bool) (Position, bool) {
	if t.LineCount() == 0 {
		return pos, false
	}
	pos = clamp(t, pos)
	line := t.Line(pos.Row)
	col := pos.Col

	switch {
	case cs.Forward && cs.Kind == Find:
		if i := indexFrom(line, cs.Char, col+1); i >= 0 {
			return Position{Row: pos.Row, Col: i}, true
		}
	case cs.Forward && cs.Kind == Till:
		from := col + 1
		if repeat {
			from = col + 2
		}
		if i := indexFrom(line, cs.Char, from); i >= 0 {
			return Position{Row: pos.Row, Col: max(i-1, 0)}, true
		}
	case cs.Kind == Find:
		if i := lastIndexBefore(line, cs.Char, col); i >= 0 {
			return Position{Row: pos.Row, Col: i}, true
		}
	default:
		limit := col
		if repeat {
			limit = col - 1
		}
		if i := lastIndexBefore(line, cs.Char, limit); i >= 0 && i+1 < len(line) {
			return Position{Row: pos.Row, Col: i + 1}, true
		}
	}
	return pos, false
}

func indexFrom(line []rune, r rune, from int) int {
	for i := max(from, 0); i < len(line); i++ {
		if line[i] == r {
			return i
		}
	}
	return -1
}

// lastIndexBefore searches line[0:limit) from the right.
func lastIndexBefore(line []rune, r rune, limit int) int {
	for i := min(limit, len(line)) - 1; i >= 0; i-- {
		if line[i] == r {
			return i
		}
	}
	return -1
}
