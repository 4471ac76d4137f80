package motion

import "unicode"

// IsWordSeparator reports whether r ends a word for w, b and e: any
// whitespace or punctuation except the underscore.
func IsWordSeparator(r rune) bool {
	if r == '_' {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// wordForward skips the rest of the current word and the separators after
// it. Running off the end of a line lands at the start of the next one.
func wordForward(t Text, p Position, sep func(rune) bool) Position {
	line := t.Line(p.Row)
	pos := p.Col
	for pos < len(line) && !sep(line[pos]) {
		pos++
	}
	for pos < len(line) && sep(line[pos]) {
		pos++
	}
	if pos >= len(line) && p.Row+1 < t.LineCount() {
		return Position{Row: p.Row + 1}
	}
	return Position{Row: p.Row, Col: min(pos, len(line))}
}

// wordBackward moves to the start of the previous word on the line, or to
// the end of the previous line from column zero.
func wordBackward(t Text, p Position, sep func(rune) bool) Position {
	line := t.Line(p.Row)
	if p.Col > 0 && len(line) > 0 {
		pos := min(p.Col, len(line)) - 1
		for pos > 0 && sep(line[pos]) {
			pos--
		}
		for pos > 0 && !sep(line[pos-1]) {
			pos--
		}
		return Position{Row: p.Row, Col: pos}
	}
	if p.Row > 0 {
		return Position{Row: p.Row - 1, Col: len(t.Line(p.Row - 1))}
	}
	return p
}

// wordEnd moves to the last character of the next word end after p,
// crossing lines when the current line has no further word.
func wordEnd(t Text, p Position, sep func(rune) bool) Position {
	row, pos := p.Row, p.Col+1
	line := t.Line(row)
	for {
		for pos < len(line) && sep(line[pos]) {
			pos++
		}
		if pos < len(line) {
			break
		}
		if row+1 >= t.LineCount() {
			return p
		}
		row++
		line = t.Line(row)
		pos = 0
	}
	for pos < len(line) && !sep(line[pos]) {
		pos++
	}
	return Position{Row: row, Col: pos - 1}
}
