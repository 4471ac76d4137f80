package buffer

import (
	"strings"

	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/history"
)

// Text returns the text in the end-exclusive range [start, end) without
// modifying the buffer. Line breaks between rows are returned as '\n'.
func (b *Buffer) Text(start, end Position) string {
	start = cursor.Clamp(start, b)
	end = cursor.Clamp(end, b)
	start, end = cursor.Order(start, end)

	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	sb.WriteByte('\n')
	for r := start.Row + 1; r < end.Row; r++ {
		sb.WriteString(string(b.lines[r]))
		sb.WriteByte('\n')
	}
	sb.WriteString(string(b.lines[end.Row][:end.Col]))
	return sb.String()
}

// DeleteRange removes [start, end) as one undoable change and returns the
// removed text. The cursor moves to start.
func (b *Buffer) DeleteRange(start, end Position) string {
	start = cursor.Clamp(start, b)
	end = cursor.Clamp(end, b)
	start, end = cursor.Order(start, end)
	if start == end {
		return ""
	}

	before := b.cursor
	text := b.Text(start, end)
	b.splice(start, end)
	b.cursor = start
	b.record(history.NewDelete(start, text), before)
	return text
}

// ReplaceRange replaces [start, end) with text as one undoable change.
// The cursor moves to the end of the inserted text.
func (b *Buffer) ReplaceRange(start, end Position, text string) {
	b.replaceRange(start, end, text, nil)
}

// ReplaceRangeKeepCursor replaces [start, end) with text and leaves the
// cursor at start.
func (b *Buffer) ReplaceRangeKeepCursor(start, end Position, text string) {
	b.replaceRange(start, end, text, &start)
}

func (b *Buffer) replaceRange(start, end Position, text string, after *Position) {
	start = cursor.Clamp(start, b)
	end = cursor.Clamp(end, b)
	start, end = cursor.Order(start, end)

	before := b.cursor
	old := b.Text(start, end)
	b.splice(start, end)
	b.cursor = b.insertText(start, text)
	if after != nil {
		b.cursor = cursor.Clamp(*after, b)
	}
	b.record(history.NewReplace(start, old, text), before)
}
