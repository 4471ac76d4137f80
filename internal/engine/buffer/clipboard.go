package buffer

import (
	"strings"
	"unicode"

	"github.com/dshills/modalkit/internal/engine/history"
)

// YankType records how yanked text is pasted back.
type YankType uint8

const (
	// YankCharacter text is pasted inline at the cursor.
	YankCharacter YankType = iota
	// YankLine text is pasted as whole lines above or below the cursor.
	YankLine
	// YankBlock text is pasted as a rectangle, one part per row.
	YankBlock
)

// String returns the yank type name.
func (t YankType) String() string {
	switch t {
	case YankCharacter:
		return "character"
	case YankLine:
		return "line"
	case YankBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ClipboardContent is the last yanked or deleted text.
type ClipboardContent struct {
	Text string
	Type YankType
}

// IsEmpty returns true if nothing has been yanked.
func (c ClipboardContent) IsEmpty() bool {
	return c.Text == ""
}

// Clipboard returns the buffer's clipboard.
func (b *Buffer) Clipboard() ClipboardContent {
	return b.clipboard
}

// SetClipboard overwrites the buffer's clipboard.
func (b *Buffer) SetClipboard(c ClipboardContent) {
	b.clipboard = c
}

// YankLine copies the cursor's line, linewise.
func (b *Buffer) YankLine() ClipboardContent {
	return b.YankLines(b.cursor.Row, b.cursor.Row)
}

// YankLines copies rows first through last, linewise.
func (b *Buffer) YankLines(first, last int) ClipboardContent {
	first, last = b.clampRows(first, last)
	b.clipboard = ClipboardContent{Text: b.joinRows(first, last) + "\n", Type: YankLine}
	return b.clipboard
}

// YankWord copies from the cursor up to the next whitespace.
func (b *Buffer) YankWord() ClipboardContent {
	line := b.lines[b.cursor.Row]
	start := min(b.cursor.Col, len(line))
	end := start
	for end < len(line) && !unicode.IsSpace(line[end]) {
		end++
	}
	b.clipboard = ClipboardContent{Text: string(line[start:end]), Type: YankCharacter}
	return b.clipboard
}

// YankToEndOfLine copies from the cursor to the end of the line.
func (b *Buffer) YankToEndOfLine() ClipboardContent {
	line := b.lines[b.cursor.Row]
	start := min(b.cursor.Col, len(line))
	b.clipboard = ClipboardContent{Text: string(line[start:]), Type: YankCharacter}
	return b.clipboard
}

// YankRange copies [start, end). Ranges spanning rows are linewise.
func (b *Buffer) YankRange(start, end Position, typ YankType) ClipboardContent {
	b.clipboard = ClipboardContent{Text: b.Text(start, end), Type: typ}
	return b.clipboard
}

// PutAfter pastes the clipboard after the cursor: below the line for
// linewise text, after the cursor column otherwise. It returns false when
// the clipboard is empty.
func (b *Buffer) PutAfter() bool {
	c := b.clipboard
	if c.IsEmpty() {
		return false
	}
	row, col := b.cursor.Row, b.cursor.Col

	switch c.Type {
	case YankLine:
		b.putLines(row+1, c.Text)
	case YankBlock:
		b.putBlock(row, min(col+1, len(b.lines[row])), c.Text)
	default:
		at := min(col+1, len(b.lines[row]))
		b.putChars(Position{Row: row, Col: at}, c.Text)
	}
	return true
}

// PutBefore pastes the clipboard before the cursor: above the line for
// linewise text, at the cursor column otherwise. It returns false when the
// clipboard is empty.
func (b *Buffer) PutBefore() bool {
	c := b.clipboard
	if c.IsEmpty() {
		return false
	}
	row, col := b.cursor.Row, b.cursor.Col

	switch c.Type {
	case YankLine:
		b.putLines(row, c.Text)
	case YankBlock:
		b.putBlock(row, min(col, len(b.lines[row])), c.Text)
	default:
		b.putChars(Position{Row: row, Col: min(col, len(b.lines[row]))}, c.Text)
	}
	return true
}

// putChars inserts characterwise text and leaves the cursor on its last rune.
func (b *Buffer) putChars(at Position, text string) {
	before := b.cursor
	end := b.insertText(at, text)
	b.cursor = Position{Row: end.Row, Col: max(end.Col-1, 0)}
	b.record(history.NewInsert(at, text), before)
}

// putLines inserts linewise text so it starts on row, moving the cursor to
// its first line.
func (b *Buffer) putLines(row int, text string) {
	before := b.cursor
	body := strings.TrimSuffix(text, "\n")

	var op history.Operation
	if row < len(b.lines) {
		op = history.NewInsert(Position{Row: row}, body+"\n")
	} else {
		last := len(b.lines) - 1
		op = history.NewInsert(Position{Row: last, Col: len(b.lines[last])}, "\n"+body)
		row = last + 1
	}
	b.Apply(op)
	b.cursor = Position{Row: row}
	b.record(op, before)
}

// putBlock inserts each line of text at col on consecutive rows, padding
// short rows with spaces and appending rows past the end of the buffer.
// The whole paste is one undoable change.
func (b *Buffer) putBlock(row, col int, text string) {
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	start := Position{Row: row, Col: col}

	b.BeginGroup()
	defer b.EndGroup()

	for i, part := range parts {
		r := row + i
		if r >= len(b.lines) {
			last := len(b.lines) - 1
			at := Position{Row: last, Col: len(b.lines[last])}
			b.insertText(at, "\n")
			b.record(history.NewInsert(at, "\n"), b.cursor)
		}
		if pad := col - len(b.lines[r]); pad > 0 {
			at := Position{Row: r, Col: len(b.lines[r])}
			spaces := strings.Repeat(" ", pad)
			b.insertText(at, spaces)
			b.record(history.NewInsert(at, spaces), b.cursor)
		}
		at := Position{Row: r, Col: col}
		b.insertText(at, part)
		if i == len(parts)-1 {
			b.cursor = start
		}
		b.record(history.NewInsert(at, part), b.cursor)
	}
	b.cursor = start
}
