// Package buffer provides the edit model of the modal editor: a list of
// rune lines, a cursor, a clipboard, an optional visual selection and a
// reversible edit history.
//
// Every mutator records a history.Operation describing itself, so any
// change can be undone and redone without snapshots:
//
//	buf := buffer.NewFromString("line1\nline2\nline3\nline4")
//
//	// Delete across lines; one undo restores the whole span
//	buf.DeleteRange(cursor.Pos(1, 0), cursor.Pos(2, 5))
//	buf.Undo()
//
// Position Types:
//
// Positions are cursor.Position values. Columns count runes, so multi-byte
// characters occupy exactly one column. DisplayColumn converts a rune column
// into a terminal cell column.
//
// Thread Safety:
//
// A Buffer is owned by a single interpreter and is not safe for concurrent
// mutation. Line returns the stored slice; callers must not modify it.
package buffer
