package buffer

import (
	"strings"
	"unicode"

	"github.com/dshills/modalkit/internal/engine/history"
)

// InsertChar inserts r at the cursor and moves the cursor past it.
// A '\n' splits the line.
func (b *Buffer) InsertChar(r rune) {
	b.InsertText(string(r))
}

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(text string) {
	if text == "" {
		return
	}
	before := b.cursor
	b.cursor = b.insertText(before, text)
	b.record(history.NewInsert(before, text), before)
}

// InsertLineBreak splits the current line at the cursor.
func (b *Buffer) InsertLineBreak() {
	b.InsertText("\n")
}

// DeleteCharBefore deletes the rune before the cursor. At column zero it
// joins the line with the previous one. It returns false at the start of
// the buffer.
func (b *Buffer) DeleteCharBefore() bool {
	before := b.cursor
	switch {
	case before.Col > 0:
		at := Position{Row: before.Row, Col: before.Col - 1}
		text := string(b.lines[at.Row][at.Col])
		b.splice(at, before)
		b.cursor = at
		b.record(history.NewDelete(at, text), before)
	case before.Row > 0:
		at := Position{Row: before.Row - 1, Col: len(b.lines[before.Row-1])}
		b.splice(at, before)
		b.cursor = at
		b.record(history.NewDelete(at, "\n"), before)
	default:
		return false
	}
	return true
}

// DeleteCharAt deletes the rune under the cursor. The cursor stays put
// unless the line became shorter than its column. It returns the deleted
// text, or "" when the cursor is past the end of the line.
func (b *Buffer) DeleteCharAt() string {
	before := b.cursor
	line := b.lines[before.Row]
	if before.Col >= len(line) {
		return ""
	}
	text := string(line[before.Col])
	b.splice(before, Position{Row: before.Row, Col: before.Col + 1})
	b.cursor = b.clampNormal(before)
	b.record(history.NewDelete(before, text), before)
	return text
}

// DeleteCharBeforeCursor deletes the rune left of the cursor without
// crossing lines. It returns the deleted text.
func (b *Buffer) DeleteCharBeforeCursor() string {
	before := b.cursor
	if before.Col == 0 {
		return ""
	}
	at := Position{Row: before.Row, Col: before.Col - 1}
	text := string(b.lines[at.Row][at.Col])
	b.splice(at, before)
	b.cursor = at
	b.record(history.NewDelete(at, text), before)
	return text
}

// DeleteLine deletes the cursor's line and returns it with a trailing
// newline. Deleting the only line leaves one empty line.
func (b *Buffer) DeleteLine() string {
	return b.DeleteLines(b.cursor.Row, b.cursor.Row)
}

// DeleteLines deletes rows first through last inclusive and returns their
// text with a trailing newline. The cursor moves to column zero of the
// line that took their place.
func (b *Buffer) DeleteLines(first, last int) string {
	first, last = b.clampRows(first, last)
	before := b.cursor

	joined := b.joinRows(first, last)
	var op history.Operation
	switch {
	case last+1 < len(b.lines):
		op = history.NewDelete(Position{Row: first}, joined+"\n")
	case first > 0:
		op = history.NewDelete(Position{Row: first - 1, Col: len(b.lines[first-1])}, "\n"+joined)
	default:
		op = history.NewDelete(Position{}, joined)
	}

	b.Apply(op)
	row := first
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	b.cursor = Position{Row: row}
	b.record(op, before)
	return joined + "\n"
}

// ClearLines replaces rows first through last with a single empty line and
// returns the removed text with a trailing newline.
func (b *Buffer) ClearLines(first, last int) string {
	first, last = b.clampRows(first, last)
	before := b.cursor

	joined := b.joinRows(first, last)
	start := Position{Row: first}
	end := Position{Row: last, Col: len(b.lines[last])}
	b.splice(start, end)
	b.cursor = start
	b.record(history.NewDelete(start, joined), before)
	return joined + "\n"
}

// DeleteToEndOfLine deletes from the cursor to the end of the line and
// returns the removed text.
func (b *Buffer) DeleteToEndOfLine() string {
	end := Position{Row: b.cursor.Row, Col: len(b.lines[b.cursor.Row])}
	if b.cursor.Col >= end.Col {
		return ""
	}
	return b.DeleteRange(b.cursor, end)
}

// IndentLine prepends one indent unit to row.
func (b *Buffer) IndentLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	before := b.cursor
	at := Position{Row: row}
	b.insertText(at, b.indentUnit)
	if b.cursor.Row == row {
		b.cursor.Col += len([]rune(b.indentUnit))
	}
	b.record(history.NewInsert(at, b.indentUnit), before)
}

// UnindentLine removes one level of leading indentation from row: a tab,
// a full indent unit of spaces, or whatever leading spaces remain.
func (b *Buffer) UnindentLine(row int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	line := b.lines[row]
	n := 0
	if len(line) > 0 && line[0] == '\t' {
		n = 1
	} else {
		for n < len(line) && n < b.indentWidth && line[n] == ' ' {
			n++
		}
	}
	if n == 0 {
		return false
	}

	before := b.cursor
	at := Position{Row: row}
	text := string(line[:n])
	b.splice(at, Position{Row: row, Col: n})
	if b.cursor.Row == row {
		b.cursor.Col = max(b.cursor.Col-n, 0)
	}
	b.record(history.NewDelete(at, text), before)
	return true
}

// ReplaceChar overwrites the rune under the cursor with r and advances.
// Past the end of the line it appends instead.
func (b *Buffer) ReplaceChar(r rune) {
	before := b.cursor
	line := b.lines[before.Row]
	if before.Col >= len(line) {
		b.InsertChar(r)
		return
	}
	old := string(line[before.Col])
	b.splice(before, Position{Row: before.Row, Col: before.Col + 1})
	b.cursor = b.insertText(before, string(r))
	b.record(history.NewReplace(before, old, string(r)), before)
}

// JoinLines joins the cursor's line with the next one, separated by a
// single space. It returns false on the last line.
func (b *Buffer) JoinLines() bool {
	row := b.cursor.Row
	if row+1 >= len(b.lines) {
		return false
	}
	head := strings.TrimRightFunc(string(b.lines[row]), unicode.IsSpace)
	tail := strings.TrimLeftFunc(string(b.lines[row+1]), unicode.IsSpace)
	joined := head
	if tail != "" {
		if head != "" {
			joined += " "
		}
		joined += tail
	}

	at := Position{Row: row, Col: len([]rune(head))}
	b.replaceRange(Position{Row: row}, Position{Row: row + 1, Col: len(b.lines[row+1])}, joined, &at)
	return true
}

// OpenLineBelow inserts an empty line after the cursor's line and moves
// the cursor onto it.
func (b *Buffer) OpenLineBelow() {
	before := b.cursor
	at := Position{Row: before.Row, Col: len(b.lines[before.Row])}
	b.insertText(at, "\n")
	b.cursor = Position{Row: before.Row + 1}
	b.record(history.NewInsert(at, "\n"), before)
}

// OpenLineAbove inserts an empty line before the cursor's line and moves
// the cursor onto it.
func (b *Buffer) OpenLineAbove() {
	before := b.cursor
	at := Position{Row: before.Row}
	b.insertText(at, "\n")
	b.cursor = at
	b.record(history.NewInsert(at, "\n"), before)
}

// clampNormal keeps p on a character when the line is non-empty.
func (b *Buffer) clampNormal(p Position) Position {
	if l := len(b.lines[p.Row]); p.Col >= l {
		p.Col = max(l-1, 0)
	}
	return p
}

func (b *Buffer) clampRows(first, last int) (int, int) {
	if first > last {
		first, last = last, first
	}
	first = max(first, 0)
	last = min(last, len(b.lines)-1)
	return first, last
}

func (b *Buffer) joinRows(first, last int) string {
	parts := make([]string, 0, last-first+1)
	for r := first; r <= last; r++ {
		parts = append(parts, string(b.lines[r]))
	}
	return strings.Join(parts, "\n")
}
