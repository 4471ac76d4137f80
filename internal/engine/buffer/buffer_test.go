package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalkit/internal/engine/cursor"
)

type state struct {
	lines  []string
	cursor Position
}

func snapshot(b *Buffer) state {
	return state{lines: b.Lines(), cursor: b.Cursor()}
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"blank lines", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.in)
			assert.Equal(t, tt.want, b.Lines())
			assert.False(t, b.Modified())
		})
	}
}

func TestNewFromReader(t *testing.T) {
	b, err := NewFromReader(strings.NewReader("x\ny"), WithPath("f.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, b.Lines())
	assert.Equal(t, "f.txt", b.Path())
	assert.NotEqual(t, b.ID(), New().ID())
}

func TestSetCursorClamps(t *testing.T) {
	b := NewFromString("abc\nde")
	b.SetCursor(cursor.Pos(5, 9))
	assert.Equal(t, cursor.Pos(1, 2), b.Cursor())
	b.SetCursor(cursor.Pos(-1, -1))
	assert.Equal(t, cursor.Pos(0, 0), b.Cursor())
}

func TestDeleteRangeMultiLineIsAtomic(t *testing.T) {
	b := NewFromString("line1\nline2\nline3\nline4")
	b.SetCursor(cursor.Pos(1, 0))

	removed := b.DeleteRange(cursor.Pos(1, 0), cursor.Pos(2, 5))

	assert.Equal(t, "line2\nline3", removed)
	assert.Equal(t, []string{"line1", "", "line4"}, b.Lines())
	assert.Equal(t, cursor.Pos(1, 0), b.Cursor())
	assert.True(t, b.Modified())

	require.True(t, b.Undo())
	assert.Equal(t, []string{"line1", "line2", "line3", "line4"}, b.Lines())
	assert.False(t, b.CanUndo())
}

func TestDeleteRangeReversedAndEmpty(t *testing.T) {
	b := NewFromString("abcdef")
	assert.Equal(t, "", b.DeleteRange(cursor.Pos(0, 2), cursor.Pos(0, 2)))
	assert.False(t, b.CanUndo())

	assert.Equal(t, "bcd", b.DeleteRange(cursor.Pos(0, 4), cursor.Pos(0, 1)))
	assert.Equal(t, "aef", b.String())
}

func TestText(t *testing.T) {
	b := NewFromString("héllo\nwörld\n!")
	assert.Equal(t, "éll", b.Text(cursor.Pos(0, 1), cursor.Pos(0, 4)))
	assert.Equal(t, "lo\nwörld\n", b.Text(cursor.Pos(0, 3), cursor.Pos(2, 0)))
	assert.Equal(t, "héllo\nwörld\n!", b.Text(cursor.Pos(0, 0), cursor.Pos(9, 9)))
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := NewFromString("alpha beta\ngamma\n  delta")
	b.SetCursor(cursor.Pos(0, 5))
	initial := snapshot(b)

	edits := []func(){
		func() { b.InsertChar('X') },
		func() { b.InsertLineBreak() },
		func() { b.DeleteCharBefore() },
		func() { b.SetCursor(cursor.Pos(1, 1)); b.DeleteCharAt() },
		func() { b.JoinLines() },
		func() { b.IndentLine(1) },
		func() { b.UnindentLine(1) },
		func() { b.SetCursor(cursor.Pos(0, 0)); b.DeleteLine() },
		func() { b.ReplaceRange(cursor.Pos(0, 0), cursor.Pos(0, 2), "ZZ\nYY") },
		func() { b.OpenLineAbove() },
		func() { b.SetCursor(cursor.Pos(1, 1)); b.ReplaceChar('q') },
	}

	var after []state
	for _, edit := range edits {
		edit()
		after = append(after, snapshot(b))
	}

	for i := len(edits) - 1; i >= 0; i-- {
		require.True(t, b.Undo(), "undo %d", i)
		if i > 0 {
			assert.Equal(t, after[i-1].lines, b.Lines(), "lines after undo %d", i)
		}
	}
	assert.Equal(t, initial.lines, b.Lines())
	assert.Equal(t, initial.cursor, b.Cursor())
	assert.False(t, b.Undo())

	for i := range edits {
		require.True(t, b.Redo(), "redo %d", i)
		assert.Equal(t, after[i].lines, b.Lines(), "lines after redo %d", i)
		assert.Equal(t, after[i].cursor, b.Cursor(), "cursor after redo %d", i)
	}
	assert.False(t, b.Redo())
}

func TestFreshEditClearsRedo(t *testing.T) {
	b := NewFromString("abc")
	b.InsertChar('x')
	require.True(t, b.Undo())
	require.True(t, b.CanRedo())

	b.InsertChar('y')
	assert.False(t, b.CanRedo())
	assert.Equal(t, "yabc", b.String())
}

func TestUndoLevelsEvictOldest(t *testing.T) {
	b := NewFromString("", WithUndoLevels(2))
	b.InsertChar('a')
	b.InsertChar('b')
	b.InsertChar('c')

	assert.Equal(t, 2, b.UndoCount())
	require.True(t, b.Undo())
	require.True(t, b.Undo())
	assert.False(t, b.Undo())
	assert.Equal(t, "a", b.String())
}

func TestDeleteCharBefore(t *testing.T) {
	t.Run("within line", func(t *testing.T) {
		b := NewFromString("abc")
		b.SetCursor(cursor.Pos(0, 2))
		require.True(t, b.DeleteCharBefore())
		assert.Equal(t, "ac", b.String())
		assert.Equal(t, cursor.Pos(0, 1), b.Cursor())
	})

	t.Run("joins lines", func(t *testing.T) {
		b := NewFromString("ab\ncd")
		b.SetCursor(cursor.Pos(1, 0))
		require.True(t, b.DeleteCharBefore())
		assert.Equal(t, []string{"abcd"}, b.Lines())
		assert.Equal(t, cursor.Pos(0, 2), b.Cursor())

		require.True(t, b.Undo())
		assert.Equal(t, []string{"ab", "cd"}, b.Lines())
		assert.Equal(t, cursor.Pos(1, 0), b.Cursor())
	})

	t.Run("buffer start", func(t *testing.T) {
		b := NewFromString("ab")
		assert.False(t, b.DeleteCharBefore())
		assert.False(t, b.CanUndo())
	})
}

func TestDeleteCharAtAndBeforeCursor(t *testing.T) {
	b := NewFromString("abc")
	b.SetCursor(cursor.Pos(0, 2))

	assert.Equal(t, "c", b.DeleteCharAt())
	assert.Equal(t, "ab", b.String())
	assert.Equal(t, cursor.Pos(0, 1), b.Cursor())

	assert.Equal(t, "a", b.DeleteCharBeforeCursor())
	assert.Equal(t, "b", b.String())
	assert.Equal(t, cursor.Pos(0, 0), b.Cursor())
	assert.Equal(t, "", b.DeleteCharBeforeCursor())
}

func TestDeleteLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		row        int
		wantLines  []string
		wantCursor Position
		wantText   string
	}{
		{"middle", "a\nb\nc", 1, []string{"a", "c"}, cursor.Pos(1, 0), "b\n"},
		{"last", "a\nb\nc", 2, []string{"a", "b"}, cursor.Pos(1, 0), "c\n"},
		{"first", "a\nb", 0, []string{"b"}, cursor.Pos(0, 0), "a\n"},
		{"only", "x", 0, []string{""}, cursor.Pos(0, 0), "x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.text)
			b.SetCursor(cursor.Pos(tt.row, 0))

			assert.Equal(t, tt.wantText, b.DeleteLine())
			assert.Equal(t, tt.wantLines, b.Lines())
			assert.Equal(t, tt.wantCursor, b.Cursor())

			require.True(t, b.Undo())
			assert.Equal(t, NewFromString(tt.text).Lines(), b.Lines())
		})
	}
}

func TestDeleteLinesRange(t *testing.T) {
	b := NewFromString("1\n2\n3\n4")
	assert.Equal(t, "2\n3\n", b.DeleteLines(2, 1))
	assert.Equal(t, []string{"1", "4"}, b.Lines())
}

func TestClearLines(t *testing.T) {
	b := NewFromString("1\n2\n3")
	assert.Equal(t, "1\n2\n", b.ClearLines(0, 1))
	assert.Equal(t, []string{"", "3"}, b.Lines())
	require.True(t, b.Undo())
	assert.Equal(t, []string{"1", "2", "3"}, b.Lines())
}

func TestDeleteToEndOfLine(t *testing.T) {
	b := NewFromString("hello world")
	b.SetCursor(cursor.Pos(0, 5))
	assert.Equal(t, " world", b.DeleteToEndOfLine())
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, "", b.DeleteToEndOfLine())
}

func TestIndentUnindent(t *testing.T) {
	b := NewFromString("x\n\ty\n  z\nw")
	b.SetCursor(cursor.Pos(0, 0))

	b.IndentLine(0)
	assert.Equal(t, "    x", b.LineText(0))
	assert.Equal(t, cursor.Pos(0, 4), b.Cursor())

	require.True(t, b.UnindentLine(0))
	assert.Equal(t, "x", b.LineText(0))
	require.True(t, b.UnindentLine(1))
	assert.Equal(t, "y", b.LineText(1))
	require.True(t, b.UnindentLine(2))
	assert.Equal(t, "z", b.LineText(2))
	assert.False(t, b.UnindentLine(3))
}

func TestIndentUnitOption(t *testing.T) {
	b := NewFromString("x", WithIndentUnit("\t"))
	b.IndentLine(0)
	assert.Equal(t, "\tx", b.String())
	assert.Equal(t, "\t", b.IndentUnit())
}

func TestReplaceChar(t *testing.T) {
	b := NewFromString("abc")
	b.SetCursor(cursor.Pos(0, 1))
	b.ReplaceChar('X')
	b.ReplaceChar('Y')
	b.ReplaceChar('Z')
	assert.Equal(t, "aXYZ", b.String())
	assert.Equal(t, cursor.Pos(0, 4), b.Cursor())

	require.True(t, b.Undo())
	require.True(t, b.Undo())
	assert.Equal(t, "aXc", b.String())
}

func TestJoinLines(t *testing.T) {
	b := NewFromString("foo  \n   bar\nbaz")
	require.True(t, b.JoinLines())
	assert.Equal(t, []string{"foo bar", "baz"}, b.Lines())
	assert.Equal(t, cursor.Pos(0, 3), b.Cursor())

	b.SetCursor(cursor.Pos(1, 0))
	assert.False(t, b.JoinLines())

	require.True(t, b.Undo())
	assert.Equal(t, []string{"foo  ", "   bar", "baz"}, b.Lines())
}

func TestOpenLines(t *testing.T) {
	b := NewFromString("a\nb")
	b.OpenLineBelow()
	assert.Equal(t, []string{"a", "", "b"}, b.Lines())
	assert.Equal(t, cursor.Pos(1, 0), b.Cursor())

	b.SetCursor(cursor.Pos(0, 1))
	b.OpenLineAbove()
	assert.Equal(t, []string{"", "a", "", "b"}, b.Lines())
	assert.Equal(t, cursor.Pos(0, 0), b.Cursor())
}

func TestDisplayColumn(t *testing.T) {
	b := NewFromString("a\tb\n日本x")
	assert.Equal(t, 1, b.DisplayColumn(0, 1))
	assert.Equal(t, 4, b.DisplayColumn(0, 2))
	assert.Equal(t, 4, b.DisplayColumn(1, 2))
	assert.Equal(t, 5, b.DisplayWidth(1))
	assert.Equal(t, 5, b.DisplayWidth(0))
}
