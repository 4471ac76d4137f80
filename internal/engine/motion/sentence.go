package motion

import (
	"slices"
	"unicode"
)

// flat is the whole text as one rune slice with a '\n' after every line,
// plus the position each rune came from.
type flat struct {
	runes []rune
	at    []Position
}

func flatten(t Text) flat {
	var f flat
	for row := range t.LineCount() {
		line := t.Line(row)
		for col, r := range line {
			f.runes = append(f.runes, r)
			f.at = append(f.at, Position{Row: row, Col: col})
		}
		f.runes = append(f.runes, '\n')
		f.at = append(f.at, Position{Row: row, Col: len(line)})
	}
	return f
}

func (f flat) index(p Position) int {
	for i, at := range f.at {
		if at == p {
			return i
		}
	}
	return 0
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isInlineSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// sentenceForward tries three heuristics in order: a blank line, a run of
// terminators followed by whitespace, and a double space. The first one
// that finds a later sentence start wins; otherwise the cursor moves to the
// end of the buffer.
func sentenceForward(t Text, p Position) Position {
	f := flatten(t)
	from := f.index(p) + 1
	for _, find := range []func(flat, int) int{afterBlankLine, afterTerminator, afterDoubleSpace} {
		if i := find(f, from); i >= 0 {
			return f.at[i]
		}
	}
	last := t.LineCount() - 1
	return Position{Row: last, Col: len(t.Line(last))}
}

func afterBlankLine(f flat, from int) int {
	rs := f.runes
	for i := from; i < len(rs); i++ {
		if rs[i] != '\n' || (i+1 < len(rs) && rs[i+1] != '\n') {
			continue
		}
		j := i + 1
		for j < len(rs) && rs[j] == '\n' {
			j++
		}
		for j < len(rs) && isInlineSpace(rs[j]) {
			j++
		}
		if j < len(rs) && rs[j] != '\n' {
			return j
		}
		i = j - 1
	}
	return -1
}

func afterTerminator(f flat, from int) int {
	rs := f.runes
	for i := from; i < len(rs); i++ {
		if !isTerminator(rs[i]) {
			continue
		}
		j := i + 1
		for j < len(rs) && isTerminator(rs[j]) {
			j++
		}
		if j < len(rs) && !unicode.IsSpace(rs[j]) {
			continue
		}
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		if j < len(rs) {
			return j
		}
	}
	return -1
}

func afterDoubleSpace(f flat, from int) int {
	rs := f.runes
	for i := from; i+1 < len(rs); i++ {
		if rs[i] != ' ' || rs[i+1] != ' ' {
			continue
		}
		j := i + 2
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		if j < len(rs) {
			return j
		}
	}
	return -1
}

// sentenceBackward collects every sentence start the three heuristics find
// and moves to the greatest one before the cursor.
func sentenceBackward(t Text, p Position) Position {
	f := flatten(t)
	rs := f.runes
	current := f.index(p)
	starts := []int{0}

	for i := range rs {
		if !isTerminator(rs[i]) {
			continue
		}
		j := i + 1
		for j < len(rs) && isTerminator(rs[j]) {
			j++
		}
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		if j < len(rs) {
			starts = append(starts, j)
		}
	}

	for i := 0; i < len(rs); i++ {
		if rs[i] != '\n' {
			continue
		}
		j := i + 1
		for j < len(rs) && isInlineSpace(rs[j]) {
			j++
		}
		if j >= len(rs) || rs[j] != '\n' {
			continue
		}
		for j < len(rs) && rs[j] == '\n' {
			j++
			for j < len(rs) && isInlineSpace(rs[j]) {
				j++
			}
			if j < len(rs) && rs[j] != '\n' {
				starts = append(starts, j)
				break
			}
		}
		i = j - 1
	}

	for i := 0; i+2 < len(rs); i++ {
		if rs[i] == ' ' && rs[i+1] == ' ' && !unicode.IsSpace(rs[i+2]) {
			starts = append(starts, i+2)
		}
	}

	slices.Sort(starts)
	target := 0
	for _, s := range slices.Compact(starts) {
		if s >= current {
			break
		}
		target = s
	}
	return f.at[target]
}
