package motion

// paragraphForward skips the non-blank lines of the current paragraph and
// the blank lines after it, landing on the first line of the next one.
func paragraphForward(t Text, p Position) Position {
	n := t.LineCount()
	row := p.Row
	for row < n && !isBlank(t.Line(row)) {
		row++
	}
	for row < n && isBlank(t.Line(row)) {
		row++
	}
	if row >= n {
		row = n - 1
	}
	return Position{Row: row}
}

// paragraphBackward lands on the first line of the previous paragraph.
func paragraphBackward(t Text, p Position) Position {
	row := p.Row
	for row > 0 {
		row--
		if isBlank(t.Line(row)) {
			break
		}
	}
	for row > 0 && isBlank(t.Line(row)) {
		row--
	}
	for row > 0 && !isBlank(t.Line(row-1)) {
		row--
	}
	return Position{Row: row}
}
