package dispatcher

import (
	"log/slog"
	"unicode"

	"github.com/dshills/modalkit/internal/engine/clipboard"
	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/motion"
)

// Searcher finds the next match of a pattern.
type Searcher interface {
	// Next returns the first match strictly after from (or strictly
	// before it when forward is false), wrapping around the buffer.
	Next(text motion.Text, from cursor.Position, pattern string, forward bool) (cursor.Position, bool)
}

// MatchLister is implemented by searchers that can enumerate every match.
// The interpreter uses it to report "Match i of N".
type MatchLister interface {
	Matches(text motion.Text, pattern string) []cursor.Position
}

// CommandExecutor runs an ex command line, without its leading ':'.
type CommandExecutor interface {
	Execute(cmd string) error
}

// CommandFunc adapts a function to CommandExecutor.
type CommandFunc func(cmd string) error

// Execute calls f(cmd).
func (f CommandFunc) Execute(cmd string) error {
	return f(cmd)
}

// StatusSink receives status messages.
type StatusSink interface {
	SetStatus(msg string)
}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(msg string)

// SetStatus calls f(msg).
func (f StatusFunc) SetStatus(msg string) {
	f(msg)
}

// LiteralSearcher matches patterns as plain text, rune by rune.
type LiteralSearcher struct {
	// CaseSensitive disables case folding.
	CaseSensitive bool
}

// Matches returns the start of every match, in buffer order. Matches do
// not span lines.
func (s LiteralSearcher) Matches(text motion.Text, pattern string) []cursor.Position {
	pat := []rune(pattern)
	if len(pat) == 0 {
		return nil
	}

	var out []cursor.Position
	for row := 0; row < text.LineCount(); row++ {
		line := text.Line(row)
		for col := 0; col+len(pat) <= len(line); col++ {
			if s.matchAt(line, col, pat) {
				out = append(out, cursor.Pos(row, col))
			}
		}
	}
	return out
}

// Next implements Searcher.
func (s LiteralSearcher) Next(text motion.Text, from cursor.Position, pattern string, forward bool) (cursor.Position, bool) {
	matches := s.Matches(text, pattern)
	if len(matches) == 0 {
		return cursor.Position{}, false
	}

	if forward {
		for _, m := range matches {
			if m.After(from) {
				return m, true
			}
		}
		return matches[0], true
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Before(from) {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}

func (s LiteralSearcher) matchAt(line []rune, col int, pat []rune) bool {
	for i, p := range pat {
		r := line[col+i]
		if r == p {
			continue
		}
		if s.CaseSensitive || unicode.ToLower(r) != unicode.ToLower(p) {
			return false
		}
	}
	return true
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithSearcher replaces the default literal searcher.
func WithSearcher(s Searcher) Option {
	return func(in *Interpreter) {
		if s != nil {
			in.searcher = s
		}
	}
}

// WithCommandExecutor sets the handler for ':' command lines.
func WithCommandExecutor(e CommandExecutor) Option {
	return func(in *Interpreter) {
		in.executor = e
	}
}

// WithStatusSink sets where status messages are sent.
func WithStatusSink(s StatusSink) Option {
	return func(in *Interpreter) {
		in.sink = s
	}
}

// WithClipboard mirrors yanks and deletes to p, and reads p before puts.
func WithClipboard(p clipboard.Provider) Option {
	return func(in *Interpreter) {
		in.clip = p
	}
}

// WithMetrics records dispatch statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(in *Interpreter) {
		in.metrics = m
	}
}
