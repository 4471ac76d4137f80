package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalkit/internal/engine/cursor"
)

func TestYank(t *testing.T) {
	b := NewFromString("foo bar\nbaz")

	assert.Equal(t, ClipboardContent{Text: "foo bar\n", Type: YankLine}, b.YankLine())
	assert.Equal(t, ClipboardContent{Text: "foo", Type: YankCharacter}, b.YankWord())

	b.SetCursor(cursor.Pos(0, 2))
	assert.Equal(t, ClipboardContent{Text: "o bar", Type: YankCharacter}, b.YankToEndOfLine())
	assert.Equal(t, "foo bar\nbaz\n", b.YankLines(0, 1).Text)
	assert.Equal(t, "o bar\nb", b.YankRange(cursor.Pos(0, 2), cursor.Pos(1, 1), YankLine).Text)

	assert.False(t, b.CanUndo())
	assert.False(t, b.Modified())
}

func TestPutEmptyClipboard(t *testing.T) {
	b := NewFromString("abc")
	assert.False(t, b.PutAfter())
	assert.False(t, b.PutBefore())
	assert.Equal(t, "abc", b.String())
}

func TestPutCharacterwise(t *testing.T) {
	tests := []struct {
		name       string
		after      bool
		want       string
		wantCursor Position
	}{
		{"after", true, "aXYbc", cursor.Pos(0, 2)},
		{"before", false, "XYabc", cursor.Pos(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("abc")
			b.SetClipboard(ClipboardContent{Text: "XY", Type: YankCharacter})
			if tt.after {
				require.True(t, b.PutAfter())
			} else {
				require.True(t, b.PutBefore())
			}
			assert.Equal(t, tt.want, b.String())
			assert.Equal(t, tt.wantCursor, b.Cursor())

			require.True(t, b.Undo())
			assert.Equal(t, "abc", b.String())
		})
	}
}

func TestPutLinewise(t *testing.T) {
	b := NewFromString("one\ntwo")
	b.YankLine()

	require.True(t, b.PutAfter())
	assert.Equal(t, []string{"one", "one", "two"}, b.Lines())
	assert.Equal(t, cursor.Pos(1, 0), b.Cursor())

	b.SetCursor(cursor.Pos(2, 2))
	require.True(t, b.PutBefore())
	assert.Equal(t, []string{"one", "one", "one", "two"}, b.Lines())
	assert.Equal(t, cursor.Pos(2, 0), b.Cursor())
}

func TestPutLinewiseAfterLastLine(t *testing.T) {
	b := NewFromString("one")
	b.YankLine()

	require.True(t, b.PutAfter())
	assert.Equal(t, []string{"one", "one"}, b.Lines())
	assert.Equal(t, cursor.Pos(1, 0), b.Cursor())

	require.True(t, b.Undo())
	assert.Equal(t, []string{"one"}, b.Lines())
}

func TestPutBlock(t *testing.T) {
	t.Run("before", func(t *testing.T) {
		b := NewFromString("ab\ncd")
		b.SetClipboard(ClipboardContent{Text: "12\n34", Type: YankBlock})

		require.True(t, b.PutBefore())
		assert.Equal(t, []string{"12ab", "34cd"}, b.Lines())
		assert.Equal(t, cursor.Pos(0, 0), b.Cursor())

		require.True(t, b.Undo())
		assert.Equal(t, []string{"ab", "cd"}, b.Lines())
	})

	t.Run("after extends buffer", func(t *testing.T) {
		b := NewFromString("ab")
		b.SetCursor(cursor.Pos(0, 1))
		b.SetClipboard(ClipboardContent{Text: "12\n34", Type: YankBlock})

		require.True(t, b.PutAfter())
		assert.Equal(t, []string{"ab12", "  34"}, b.Lines())
		assert.Equal(t, cursor.Pos(0, 2), b.Cursor())

		require.True(t, b.Undo())
		assert.Equal(t, []string{"ab"}, b.Lines())
		assert.False(t, b.CanUndo())
	})
}

func TestCharacterSelection(t *testing.T) {
	b := NewFromString("hello world")
	b.StartSelection(cursor.SelectCharacter)
	b.SetCursor(cursor.Pos(0, 4))

	sel, ok := b.Selection().Get()
	require.True(t, ok)
	assert.Equal(t, cursor.Pos(0, 4), sel.Head)

	c, ok := b.DeleteSelection()
	require.True(t, ok)
	assert.Equal(t, ClipboardContent{Text: "hello", Type: YankCharacter}, c)
	assert.Equal(t, " world", b.String())
	assert.Equal(t, cursor.Pos(0, 0), b.Cursor())
	assert.False(t, b.Selection().IsPresent())
	assert.Equal(t, c, b.Clipboard())
}

func TestCharacterSelectionAtLineEndTakesNewline(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.SetCursor(cursor.Pos(0, 1))
	b.StartSelection(cursor.SelectCharacter)
	b.SetCursor(cursor.Pos(0, 2))

	c, ok := b.SelectionText()
	require.True(t, ok)
	assert.Equal(t, "b\n", c.Text)
}

func TestYankSelection(t *testing.T) {
	b := NewFromString("hello world")
	b.SetCursor(cursor.Pos(0, 10))
	b.StartSelection(cursor.SelectCharacter)
	b.SetCursor(cursor.Pos(0, 6))

	c, ok := b.YankSelection()
	require.True(t, ok)
	assert.Equal(t, "world", c.Text)
	assert.Equal(t, cursor.Pos(0, 6), b.Cursor())
	assert.False(t, b.Selection().IsPresent())
	assert.False(t, b.CanUndo())

	_, ok = b.YankSelection()
	assert.False(t, ok)
}

func TestLineSelection(t *testing.T) {
	b := NewFromString("a\nb\nc")
	b.StartSelection(cursor.SelectLine)
	b.SetCursor(cursor.Pos(1, 0))

	c, ok := b.SelectionText()
	require.True(t, ok)
	assert.Equal(t, ClipboardContent{Text: "a\nb\n", Type: YankLine}, c)

	start, end := b.SelectionRange(b.Selection().MustGet())
	assert.Equal(t, cursor.Pos(0, 0), start)
	assert.Equal(t, cursor.Pos(1, 1), end)

	_, ok = b.DeleteSelection()
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, b.Lines())
}

func TestChangeLineSelection(t *testing.T) {
	b := NewFromString("a\nb\nc")
	b.SetCursor(cursor.Pos(1, 0))
	b.SetSelectionKind(cursor.SelectLine)
	b.SetCursor(cursor.Pos(2, 0))

	c, ok := b.ChangeSelection()
	require.True(t, ok)
	assert.Equal(t, "b\nc\n", c.Text)
	assert.Equal(t, []string{"a", ""}, b.Lines())
	assert.Equal(t, cursor.Pos(1, 0), b.Cursor())
}

func TestBlockSelection(t *testing.T) {
	b := NewFromString("abcd\nef\nghij")
	b.SetCursor(cursor.Pos(0, 1))
	b.StartSelection(cursor.SelectBlock)
	b.SetCursor(cursor.Pos(2, 2))

	c, ok := b.SelectionText()
	require.True(t, ok)
	assert.Equal(t, ClipboardContent{Text: "bc\nf \nhi", Type: YankBlock}, c)

	_, ok = b.DeleteSelection()
	require.True(t, ok)
	assert.Equal(t, []string{"ad", "e", "gj"}, b.Lines())
	assert.Equal(t, cursor.Pos(0, 1), b.Cursor())

	require.True(t, b.Undo())
	assert.Equal(t, []string{"abcd", "ef", "ghij"}, b.Lines())
	assert.False(t, b.CanUndo())
}
