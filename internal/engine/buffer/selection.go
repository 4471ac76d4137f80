package buffer

import (
	"strings"

	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/history"
)

// StartSelection begins a selection of kind anchored at the cursor.
func (b *Buffer) StartSelection(kind cursor.SelectionKind) {
	b.selection = mo.Some(cursor.NewSelection(b.cursor, kind))
}

// SetSelectionKind changes the kind of the active selection, starting one
// if none exists.
func (b *Buffer) SetSelectionKind(kind cursor.SelectionKind) {
	sel, ok := b.selection.Get()
	if !ok {
		b.StartSelection(kind)
		return
	}
	b.selection = mo.Some(sel.WithKind(kind))
}

// Selection returns the active selection, if any.
func (b *Buffer) Selection() mo.Option[cursor.Selection] {
	return b.selection
}

// ClearSelection drops the active selection.
func (b *Buffer) ClearSelection() {
	b.selection = mo.None[cursor.Selection]()
}

// updateSelection moves the selection head to the cursor.
func (b *Buffer) updateSelection() {
	if sel, ok := b.selection.Get(); ok {
		b.selection = mo.Some(sel.Extend(b.cursor))
	}
}

// SelectionText returns the selected text and the yank type it pastes as.
func (b *Buffer) SelectionText() (ClipboardContent, bool) {
	sel, ok := b.selection.Get()
	if !ok {
		return ClipboardContent{}, false
	}

	switch sel.Kind {
	case cursor.SelectLine:
		first, last := sel.Rows()
		first, last = b.clampRows(first, last)
		return ClipboardContent{Text: b.joinRows(first, last) + "\n", Type: YankLine}, true
	case cursor.SelectBlock:
		return ClipboardContent{Text: b.blockText(sel), Type: YankBlock}, true
	default:
		start, end := b.charSpan(sel)
		return ClipboardContent{Text: b.Text(start, end), Type: YankCharacter}, true
	}
}

// YankSelection copies the selection to the clipboard, clears it and moves
// the cursor to its start.
func (b *Buffer) YankSelection() (ClipboardContent, bool) {
	c, ok := b.SelectionText()
	if !ok {
		return ClipboardContent{}, false
	}
	sel := b.selection.MustGet()
	b.clipboard = c
	b.ClearSelection()
	b.cursor = b.selectionStart(sel)
	return c, true
}

// DeleteSelection removes the selected text as one undoable change, copies
// it to the clipboard and clears the selection.
func (b *Buffer) DeleteSelection() (ClipboardContent, bool) {
	c, ok := b.SelectionText()
	if !ok {
		return ClipboardContent{}, false
	}
	sel := b.selection.MustGet()
	b.ClearSelection()
	b.clipboard = c

	switch sel.Kind {
	case cursor.SelectLine:
		first, last := sel.Rows()
		b.DeleteLines(first, last)
	case cursor.SelectBlock:
		b.deleteBlock(sel)
	default:
		start, end := b.charSpan(sel)
		b.DeleteRange(start, end)
	}
	return c, true
}

// ChangeSelection removes the selected text like DeleteSelection, except
// that a linewise selection leaves one empty line to type into.
func (b *Buffer) ChangeSelection() (ClipboardContent, bool) {
	sel, ok := b.selection.Get()
	if !ok {
		return ClipboardContent{}, false
	}
	if sel.Kind != cursor.SelectLine {
		return b.DeleteSelection()
	}
	c, _ := b.SelectionText()
	b.ClearSelection()
	b.clipboard = c
	first, last := sel.Rows()
	b.ClearLines(first, last)
	return c, true
}

// SelectionRange returns the end-exclusive span a selection covers when
// treated characterwise or linewise.
func (b *Buffer) SelectionRange(sel cursor.Selection) (Position, Position) {
	if sel.Kind == cursor.SelectLine {
		first, last := b.clampRows(sel.Start().Row, sel.End().Row)
		return Position{Row: first}, Position{Row: last, Col: len(b.lines[last])}
	}
	return b.charSpan(sel)
}

// charSpan converts an inclusive characterwise selection into an
// end-exclusive range.
func (b *Buffer) charSpan(sel cursor.Selection) (Position, Position) {
	start := cursor.Clamp(sel.Start(), b)
	end := cursor.Clamp(sel.End(), b)
	if end.Col < len(b.lines[end.Row]) {
		end.Col++
	} else if end.Row+1 < len(b.lines) {
		end = Position{Row: end.Row + 1}
	}
	return start, end
}

func (b *Buffer) selectionStart(sel cursor.Selection) Position {
	switch sel.Kind {
	case cursor.SelectLine:
		return Position{Row: sel.Start().Row}
	case cursor.SelectBlock:
		left, _ := sel.Columns()
		return cursor.Clamp(Position{Row: sel.Start().Row, Col: left}, b)
	default:
		return cursor.Clamp(sel.Start(), b)
	}
}

// blockText returns the column rectangle of sel, padding short rows with
// spaces, one row per line.
func (b *Buffer) blockText(sel cursor.Selection) string {
	first, last := sel.Rows()
	first, last = b.clampRows(first, last)
	left, right := sel.Columns()

	rows := make([]string, 0, last-first+1)
	for r := first; r <= last; r++ {
		line := b.lines[r]
		var sb strings.Builder
		for c := left; c <= right; c++ {
			if c < len(line) {
				sb.WriteRune(line[c])
			} else {
				sb.WriteByte(' ')
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// deleteBlock removes the column rectangle of sel from every row it spans.
func (b *Buffer) deleteBlock(sel cursor.Selection) {
	first, last := sel.Rows()
	first, last = b.clampRows(first, last)
	left, right := sel.Columns()
	start := cursor.Clamp(Position{Row: first, Col: left}, b)
	before := b.cursor

	b.BeginGroup()
	defer b.EndGroup()

	for r := first; r <= last; r++ {
		line := b.lines[r]
		if left >= len(line) {
			continue
		}
		end := min(right+1, len(line))
		at := Position{Row: r, Col: left}
		text := string(line[left:end])
		b.splice(at, Position{Row: r, Col: end})
		b.cursor = start
		b.record(history.NewDelete(at, text), before)
	}
	b.cursor = start
}
