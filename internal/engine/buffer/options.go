package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithUndoLevels sets how many undo entries the buffer keeps.
func WithUndoLevels(levels int) Option {
	return func(b *Buffer) {
		b.history.SetMaxEntries(levels)
	}
}

// WithIndentUnit sets the text inserted by IndentLine.
func WithIndentUnit(unit string) Option {
	return func(b *Buffer) {
		if unit != "" {
			b.indentUnit = unit
		}
	}
}

// WithIndentWidth sets how many leading spaces UnindentLine removes.
func WithIndentWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.indentWidth = width
		}
	}
}

// WithTabWidth sets the buffer's tab width for display columns.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithPath associates the buffer with a file path.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
