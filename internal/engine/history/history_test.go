package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalkit/internal/engine"
	"github.com/dshills/modalkit/internal/engine/cursor"
)

// recorder is an Applier that remembers what it was asked to do.
type recorder struct {
	applied []Operation
	cursor  Position
}

func (r *recorder) Apply(op Operation)   { r.applied = append(r.applied, op) }
func (r *recorder) SetCursor(p Position) { r.cursor = p }

func insertDelta(row int, text string) Delta {
	return NewDelta(NewInsert(cursor.Pos(row, 0), text), cursor.Pos(row, 0), cursor.Pos(row, len(text)))
}

func TestOperationInvert(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want Operation
	}{
		{"insert", NewInsert(cursor.Pos(1, 2), "ab"), NewDelete(cursor.Pos(1, 2), "ab")},
		{"delete", NewDelete(cursor.Pos(0, 0), "x\n"), NewInsert(cursor.Pos(0, 0), "x\n")},
		{"replace", NewReplace(cursor.Pos(3, 1), "old", "new"), NewReplace(cursor.Pos(3, 1), "new", "old")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Invert())
			assert.Equal(t, tt.op, tt.op.Invert().Invert())
		})
	}
}

func TestOperationListInvertReversesOrder(t *testing.T) {
	ops := OperationList{
		NewInsert(cursor.Pos(0, 0), "a"),
		NewDelete(cursor.Pos(0, 1), "b"),
	}
	inv := ops.Invert()
	require.Len(t, inv, 2)
	assert.Equal(t, Insert, inv[0].Kind)
	assert.Equal(t, "b", inv[0].Text)
	assert.Equal(t, Delete, inv[1].Kind)
	assert.Equal(t, "a", inv[1].Text)
}

func TestOperationIsNoop(t *testing.T) {
	assert.True(t, NewInsert(cursor.Pos(0, 0), "").IsNoop())
	assert.True(t, NewReplace(cursor.Pos(0, 0), "a", "a").IsNoop())
	assert.False(t, NewDelete(cursor.Pos(0, 0), "a").IsNoop())
}

func TestHistoryUndoRedo(t *testing.T) {
	h := New(10)
	r := &recorder{}

	h.Push(insertDelta(0, "abc"))
	require.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	require.NoError(t, h.Undo(r))
	require.Len(t, r.applied, 1)
	assert.Equal(t, Delete, r.applied[0].Kind)
	assert.Equal(t, cursor.Pos(0, 0), r.cursor)
	assert.True(t, h.CanRedo())

	require.NoError(t, h.Redo(r))
	require.Len(t, r.applied, 2)
	assert.Equal(t, Insert, r.applied[1].Kind)
	assert.Equal(t, cursor.Pos(0, 3), r.cursor)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := New(0)
	r := &recorder{}

	assert.ErrorIs(t, h.Undo(r), engine.ErrNothingToUndo)
	assert.ErrorIs(t, h.Redo(r), engine.ErrNothingToRedo)
	assert.Equal(t, DefaultMaxEntries, h.MaxEntries())
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := New(10)
	r := &recorder{}

	h.Push(insertDelta(0, "a"))
	require.NoError(t, h.Undo(r))
	require.True(t, h.CanRedo())

	h.Push(insertDelta(0, "b"))
	assert.False(t, h.CanRedo())
}

func TestHistoryUndoDoesNotClearRedo(t *testing.T) {
	h := New(10)
	r := &recorder{}

	h.Push(insertDelta(0, "a"))
	h.Push(insertDelta(1, "b"))
	require.NoError(t, h.Undo(r))
	require.NoError(t, h.Undo(r))
	assert.Equal(t, 2, h.RedoCount())
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		h.Push(insertDelta(i, "x"))
	}
	assert.Equal(t, 3, h.UndoCount())

	r := &recorder{}
	for h.CanUndo() {
		require.NoError(t, h.Undo(r))
	}
	// The surviving entries are rows 4, 3 and 2.
	assert.Equal(t, 2, r.applied[2].Pos.Row)

	h.SetMaxEntries(1)
	assert.Equal(t, 1, h.MaxEntries())
}

func TestHistoryGrouping(t *testing.T) {
	h := New(10)
	r := &recorder{}

	h.BeginGroup()
	assert.True(t, h.IsGrouping())
	h.Push(insertDelta(0, "a"))
	h.Push(insertDelta(1, "bb"))
	h.EndGroup()

	require.Equal(t, 1, h.UndoCount())
	require.NoError(t, h.Undo(r))
	require.Len(t, r.applied, 2)
	assert.Equal(t, 1, r.applied[0].Pos.Row)
	assert.Equal(t, cursor.Pos(0, 0), r.cursor)
}

func TestHistoryEmptyGroupPushesNothing(t *testing.T) {
	h := New(10)
	h.BeginGroup()
	h.EndGroup()
	assert.False(t, h.CanUndo())
}
