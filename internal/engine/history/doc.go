// Package history provides undo/redo functionality for the modal editor.
//
// Every buffer mutation describes itself as an Operation before it touches
// the text. Key concepts:
//
// # Operations
//
// An Operation is one atomic edit: an Insert, Delete, or Replace anchored at
// a position. Invert returns the operation that reverses it, so undo never
// needs a snapshot of the buffer.
//
// # Deltas
//
// A Delta is one undoable unit: the operations it applied in order plus the
// cursor before and after.
//
// # History Stack
//
// The History type manages undo/redo stacks and grouping:
//
//	h := history.New(1000) // Max 1000 undo entries
//
//	h.Push(delta)
//	h.Undo(buf) // buf implements Applier
//	h.Redo(buf)
//
// Pushing a fresh delta clears the redo stack. Undo and redo only move
// deltas between the two stacks.
//
// # Grouping
//
// Multiple deltas can be recorded as a single undo unit:
//
//	h.BeginGroup()
//	// ... several edits ...
//	h.EndGroup()
package history
