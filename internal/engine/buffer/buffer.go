package buffer

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/history"
)

// Position is an alias for cursor.Position for convenience.
type Position = cursor.Position

// Buffer is the editable text of one file plus its editing state.
type Buffer struct {
	id   uuid.UUID
	path string

	lines  [][]rune
	cursor Position

	history   *history.History
	clipboard ClipboardContent
	selection mo.Option[cursor.Selection]

	modified    bool
	indentUnit  string
	indentWidth int
	tabWidth    int
}

// New creates a new buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:          uuid.New(),
		lines:       [][]rune{{}},
		history:     history.New(history.DefaultMaxEntries),
		selection:   mo.None[cursor.Selection](),
		indentUnit:  "    ",
		indentWidth: 4,
		tabWidth:    4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromString creates a buffer with initial content.
// A single trailing newline does not produce an extra empty line.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = splitLines(normalizeLineEndings(s))
	return b
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...), nil
}

func splitLines(s string) [][]rune {
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Path returns the file path the buffer was loaded from, if any.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath associates the buffer with a file path.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// LineCount returns the number of lines. It is always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the runes of a line, or nil if row is out of range.
// The returned slice must not be modified.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineText returns a line as a string.
func (b *Buffer) LineText(row int) string {
	return string(b.Line(row))
}

// LineLen returns the rune length of a line.
func (b *Buffer) LineLen(row int) int {
	return len(b.Line(row))
}

// Lines returns a copy of every line as strings.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// String returns the full buffer content joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor, clamping it to the buffer.
func (b *Buffer) SetCursor(p Position) {
	b.cursor = cursor.Clamp(p, b)
	b.updateSelection()
}

// Modified reports whether the buffer changed since it was loaded or
// last marked clean.
func (b *Buffer) Modified() bool {
	return b.modified
}

// MarkClean clears the modified flag, typically after a save.
func (b *Buffer) MarkClean() {
	b.modified = false
}

// IndentUnit returns the text inserted by one level of indentation.
func (b *Buffer) IndentUnit() string {
	return b.indentUnit
}

// Configure applies options to an existing buffer.
func (b *Buffer) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(b)
	}
}

// Undo reverts the most recent change. It returns false when there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	if err := b.history.Undo(b); err != nil {
		return false
	}
	b.modified = true
	return true
}

// Redo re-applies the most recently undone change. It returns false when
// there is nothing to redo.
func (b *Buffer) Redo() bool {
	if err := b.history.Redo(b); err != nil {
		return false
	}
	b.modified = true
	return true
}

// CanUndo returns true if undo is available.
func (b *Buffer) CanUndo() bool {
	return b.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (b *Buffer) CanRedo() bool {
	return b.history.CanRedo()
}

// UndoCount returns the number of undo entries kept.
func (b *Buffer) UndoCount() int {
	return b.history.UndoCount()
}

// BeginGroup makes the following changes undo as one unit until EndGroup.
func (b *Buffer) BeginGroup() {
	b.history.BeginGroup()
}

// EndGroup closes a group opened with BeginGroup.
func (b *Buffer) EndGroup() {
	b.history.EndGroup()
}

// Apply performs op on the text without recording it.
// It implements history.Applier.
func (b *Buffer) Apply(op history.Operation) {
	switch op.Kind {
	case history.Insert:
		b.insertText(op.Pos, op.Text)
	case history.Delete:
		b.deleteText(op.Pos, op.Text)
	case history.Replace:
		b.deleteText(op.Pos, op.Old)
		b.insertText(op.Pos, op.New)
	}
}

// record pushes op as a single undoable delta. It must be called after the
// raw mutation so the cursor after the change is captured.
func (b *Buffer) record(op history.Operation, before Position) {
	if op.IsNoop() {
		return
	}
	b.history.Push(history.NewDelta(op, before, b.cursor))
	b.modified = true
}

// insertText splices text into the lines at pos and returns the position
// just past the inserted text.
func (b *Buffer) insertText(pos Position, text string) Position {
	pos = cursor.Clamp(pos, b)
	if text == "" {
		return pos
	}

	line := b.lines[pos.Row]
	prefix := line[:pos.Col]
	suffix := line[pos.Col:]
	parts := strings.Split(text, "\n")

	if len(parts) == 1 {
		ins := []rune(parts[0])
		merged := make([]rune, 0, len(line)+len(ins))
		merged = append(merged, prefix...)
		merged = append(merged, ins...)
		merged = append(merged, suffix...)
		b.lines[pos.Row] = merged
		return Position{Row: pos.Row, Col: pos.Col + len(ins)}
	}

	newLines := make([][]rune, len(parts))
	first := make([]rune, 0, len(prefix)+len(parts[0]))
	first = append(first, prefix...)
	first = append(first, []rune(parts[0])...)
	newLines[0] = first
	for i := 1; i < len(parts)-1; i++ {
		newLines[i] = []rune(parts[i])
	}
	lastIns := []rune(parts[len(parts)-1])
	last := make([]rune, 0, len(lastIns)+len(suffix))
	last = append(last, lastIns...)
	last = append(last, suffix...)
	newLines[len(parts)-1] = last

	out := make([][]rune, 0, len(b.lines)+len(parts)-1)
	out = append(out, b.lines[:pos.Row]...)
	out = append(out, newLines...)
	out = append(out, b.lines[pos.Row+1:]...)
	b.lines = out

	return Position{Row: pos.Row + len(parts) - 1, Col: len(lastIns)}
}

// deleteText removes the span that text occupies starting at pos.
func (b *Buffer) deleteText(pos Position, text string) {
	b.splice(pos, advance(pos, text))
}

// advance returns the position reached by walking text from pos.
func advance(pos Position, text string) Position {
	nl := strings.Count(text, "\n")
	if nl == 0 {
		return Position{Row: pos.Row, Col: pos.Col + len([]rune(text))}
	}
	tail := text[strings.LastIndex(text, "\n")+1:]
	return Position{Row: pos.Row + nl, Col: len([]rune(tail))}
}

// splice removes the end-exclusive span [start, end) and joins the
// surrounding text.
func (b *Buffer) splice(start, end Position) {
	start = cursor.Clamp(start, b)
	end = cursor.Clamp(end, b)
	start, end = cursor.Order(start, end)
	if start == end {
		return
	}

	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)

	out := make([][]rune, 0, len(b.lines)-(end.Row-start.Row))
	out = append(out, b.lines[:start.Row]...)
	out = append(out, joined)
	out = append(out, b.lines[end.Row+1:]...)
	b.lines = out
}
