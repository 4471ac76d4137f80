// Package engine holds the text-side core of the modal editor.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - cursor: rune-indexed positions and visual selections
//   - history: reversible operations, deltas and the undo/redo stacks
//   - buffer: the edit model; every mutation records itself before it runs
//   - clipboard: providers mirroring yanks to the system clipboard
//   - motion: pure cursor motions over read-only text
//   - textobject: pure text-object range resolution
//
// The engine has no notion of keys or modes. Those live in the input
// packages, and the dispatcher joins the two.
//
// # Basic Usage
//
//	buf := buffer.NewFromString("hello world")
//	buf.SetCursor(cursor.Pos(0, 5))
//	buf.InsertChar('!')
//	buf.Undo()
//
// # Thread Safety
//
// A Buffer is owned by one interpreter and is not safe for concurrent
// mutation. Motions and text objects only read.
package engine
