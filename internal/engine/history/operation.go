package history

import (
	"time"

	"github.com/dshills/modalkit/internal/engine/cursor"
)

// Position is an alias for cursor.Position for convenience.
type Position = cursor.Position

// Kind identifies what an operation does to the text.
type Kind uint8

const (
	// Insert adds Text at Pos.
	Insert Kind = iota
	// Delete removes Text starting at Pos.
	Delete
	// Replace swaps Old for New starting at Pos.
	Replace
)

// String returns the operation kind name.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Operation represents a single undoable edit.
// Text may contain '\n', which stands for a line break.
type Operation struct {
	Kind Kind
	Pos  Position
	Text string // Insert and Delete payload
	Old  string // Replace: text that was removed
	New  string // Replace: text that was inserted
}

// NewInsert creates an operation for an insertion.
func NewInsert(pos Position, text string) Operation {
	return Operation{Kind: Insert, Pos: pos, Text: text}
}

// NewDelete creates an operation for a deletion.
func NewDelete(pos Position, text string) Operation {
	return Operation{Kind: Delete, Pos: pos, Text: text}
}

// NewReplace creates an operation for a replacement.
func NewReplace(pos Position, oldText, newText string) Operation {
	return Operation{Kind: Replace, Pos: pos, Old: oldText, New: newText}
}

// IsNoop returns true if this operation makes no changes.
func (op Operation) IsNoop() bool {
	switch op.Kind {
	case Insert, Delete:
		return op.Text == ""
	default:
		return op.Old == op.New
	}
}

// Invert returns an operation that undoes this one.
func (op Operation) Invert() Operation {
	switch op.Kind {
	case Insert:
		return NewDelete(op.Pos, op.Text)
	case Delete:
		return NewInsert(op.Pos, op.Text)
	default:
		return NewReplace(op.Pos, op.New, op.Old)
	}
}

// OperationList is a collection of operations that are applied together.
type OperationList []Operation

// Invert returns a list of inverse operations in reverse order.
func (ops OperationList) Invert() OperationList {
	result := make(OperationList, len(ops))
	for i, op := range ops {
		result[len(ops)-1-i] = op.Invert()
	}
	return result
}

// Delta is one undoable unit of change.
type Delta struct {
	Operations   OperationList
	CursorBefore Position
	CursorAfter  Position
	Timestamp    time.Time
}

// NewDelta creates a delta holding a single operation.
func NewDelta(op Operation, before, after Position) Delta {
	return Delta{
		Operations:   OperationList{op},
		CursorBefore: before,
		CursorAfter:  after,
		Timestamp:    time.Now(),
	}
}
