package motion

import "errors"

var (
	// ErrNotOnBracket indicates % was used with the cursor off a bracket.
	ErrNotOnBracket = errors.New("not on a bracket")

	// ErrNoMatchingBracket indicates the bracket under the cursor is unbalanced.
	ErrNoMatchingBracket = errors.New("no matching bracket found")
)

var bracketPairs = map[rune]struct {
	match   rune
	forward bool
}{
	'(': {')', true},
	'[': {']', true},
	'{': {'}', true},
	'<': {'>', true},
	')': {'(', false},
	']': {'[', false},
	'}': {'{', false},
	'>': {'<', false},
}

// MatchBracket finds the bracket paired with the one under the cursor,
// scanning across lines and counting nesting of the same bracket type.
func MatchBracket(t Text, pos Position) (Position, error) {
	pos = clamp(t, pos)
	line := t.Line(pos.Row)
	if pos.Col >= len(line) {
		return pos, ErrNotOnBracket
	}
	open := line[pos.Col]
	pair, ok := bracketPairs[open]
	if !ok {
		return pos, ErrNotOnBracket
	}

	depth := 1
	if pair.forward {
		row, col := pos.Row, pos.Col+1
		for row < t.LineCount() {
			l := t.Line(row)
			for ; col < len(l); col++ {
				switch l[col] {
				case open:
					depth++
				case pair.match:
					depth--
					if depth == 0 {
						return Position{Row: row, Col: col}, nil
					}
				}
			}
			row++
			col = 0
		}
		return pos, ErrNoMatchingBracket
	}

	row, col := pos.Row, pos.Col-1
	for row >= 0 {
		l := t.Line(row)
		for ; col >= 0; col-- {
			switch l[col] {
			case open:
				depth++
			case pair.match:
				depth--
				if depth == 0 {
					return Position{Row: row, Col: col}, nil
				}
			}
		}
		row--
		if row >= 0 {
			col = len(t.Line(row)) - 1
		}
	}
	return pos, ErrNoMatchingBracket
}
