// Package dispatcher turns key events into buffer edits.
//
// The Interpreter owns a buffer, a mode controller and the key sequence
// resolver. Each key is resolved to at most one action, which is then
// executed: a motion moves the cursor, an edit mutates the buffer, and a
// motion or text object arriving while an operator is pending is handed
// to the operator engine (operator.go).
//
// Usage:
//
//	in, err := dispatcher.New(cfg, buffer.NewFromString("hello world"))
//	for _, ev := range events {
//	    in.HandleKey(ev)
//	}
//	fmt.Println(in.Buffer().String(), in.Mode())
package dispatcher

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/config"
	"github.com/dshills/modalkit/internal/engine/buffer"
	"github.com/dshills/modalkit/internal/engine/clipboard"
	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/motion"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keymap"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/vim"
)

// Interpreter is a modal editing session over one buffer. It is not safe
// for concurrent use; keys must be handled one at a time.
type Interpreter struct {
	buf      *buffer.Buffer
	modes    *mode.Controller
	keymap   *keymap.Keymap
	resolver vim.Resolver
	state    vim.State

	// anchor is the cursor position when the pending operator started.
	anchor cursor.Position

	lastCharSearch mo.Option[motion.CharSearch]
	lastCommand    mo.Option[lastCommand]

	// commandLine holds the ':' '/' or '?' line including its prefix.
	commandLine []rune
	lastSearch  mo.Option[searchQuery]

	status  string
	outcome Outcome

	searcher Searcher
	executor CommandExecutor
	sink     StatusSink
	clip     clipboard.Provider
	metrics  *Metrics
	logger   *slog.Logger
}

type searchQuery struct {
	pattern string
	forward bool
}

// New creates an interpreter editing buf with the settings and keymaps in
// cfg. A nil buf starts with an empty buffer.
func New(cfg config.Config, buf *buffer.Buffer, opts ...Option) (*Interpreter, error) {
	in := &Interpreter{
		modes:          mode.NewController(),
		state:          vim.NewState(),
		lastCharSearch: mo.None[motion.CharSearch](),
		lastCommand:    mo.None[lastCommand](),
		lastSearch:     mo.None[searchQuery](),
		searcher:       LiteralSearcher{},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(in)
	}

	if buf == nil {
		buf = buffer.New()
	}
	in.buf = buf
	in.logger = in.logger.With("buffer", buf.ID().String())

	if err := in.Reload(cfg); err != nil {
		return nil, err
	}
	in.modes.OnChange(in.onModeChange)
	return in, nil
}

// Reload applies new settings and keymaps between keys. Any partial key
// sequence or pending operator is dropped.
func (in *Interpreter) Reload(cfg config.Config) error {
	km, err := cfg.BuildKeymap(in.logger)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	in.keymap = km
	in.resolver = vim.NewResolver(cfg.SequenceTimeout)
	in.buf.Configure(
		buffer.WithUndoLevels(cfg.UndoLevels),
		buffer.WithIndentUnit(cfg.IndentUnit),
		buffer.WithIndentWidth(cfg.IndentWidth),
	)

	in.state = in.state.Reset()
	if in.modes.Is(mode.OperatorPending) {
		in.modes.Switch(mode.Normal)
	}
	return nil
}

// Buffer returns the buffer being edited.
func (in *Interpreter) Buffer() *buffer.Buffer {
	return in.buf
}

// Mode returns the current mode.
func (in *Interpreter) Mode() mode.Mode {
	return in.modes.Current()
}

// Modes returns the mode controller, for registering change callbacks.
func (in *Interpreter) Modes() *mode.Controller {
	return in.modes
}

// Keymap returns the active keymap.
func (in *Interpreter) Keymap() *keymap.Keymap {
	return in.keymap
}

// State returns the resolver state.
func (in *Interpreter) State() vim.State {
	return in.state
}

// Pending returns the partial key sequence typed so far.
func (in *Interpreter) Pending() string {
	return in.state.Pending
}

// CommandLine returns the command or search line, including its ':' '/'
// or '?' prefix. It is empty outside command and search modes.
func (in *Interpreter) CommandLine() string {
	return string(in.commandLine)
}

// Status returns the message set by the last action, if any.
func (in *Interpreter) Status() string {
	return in.status
}

// Metrics returns the metrics collector, or nil.
func (in *Interpreter) Metrics() *Metrics {
	return in.metrics
}

// HandleKey resolves ev and executes the resulting action, if any.
func (in *Interpreter) HandleKey(ev key.Event) {
	in.status = ""

	current := in.modes.Current()
	var res mo.Option[vim.Resolution]
	in.state, res = in.resolver.Step(in.state, vim.TokenFrom(ev), current, in.keymap.Table(current))

	r, ok := res.Get()
	if !ok {
		in.logger.Debug("key consumed", "key", ev.Canonical(), "pending", in.state.Pending, "mode", current.String())
		return
	}

	if r.Action.IsRepeatable() {
		in.lastCommand = mo.Some(lastCommand{Resolution: r, Event: ev})
	}
	in.dispatch(r)
}

// dispatch executes r with panic recovery.
func (in *Interpreter) dispatch(r vim.Resolution) {
	start := time.Now()
	name := r.Action.String()

	defer func() {
		if p := recover(); p != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			in.logger.Error("action panicked", "action", name, "panic", p, "stack", string(stack[:n]))
			in.state = in.state.Reset()
			in.buf.ClearSelection()
			in.modes.Switch(mode.Normal)
			if in.metrics != nil {
				in.metrics.RecordPanic(name)
			}
		}
	}()

	in.outcome = Applied
	in.execute(r)

	in.logger.Debug("action", "action", name, "keys", r.Keys, "mode", in.modes.Current().String(), "outcome", in.outcome.String())
	if in.metrics != nil {
		in.metrics.RecordDispatch(name, time.Since(start), in.outcome)
	}
}

// noop marks the current action as having no effect and reports msg.
func (in *Interpreter) noop(msg string) {
	in.outcome = NoOp
	if msg != "" {
		in.setStatus(msg)
	}
}

func (in *Interpreter) setStatus(msg string) {
	in.status = msg
	if in.sink != nil {
		in.sink.SetStatus(msg)
	}
}

// onModeChange keeps the selection and command line in step with the mode.
func (in *Interpreter) onModeChange(from, to mode.Mode) {
	switch {
	case to.IsVisual() && from.IsVisual():
		in.buf.SetSelectionKind(selectionKind(to))
	case to.IsVisual():
		in.buf.StartSelection(selectionKind(to))
	case from.IsVisual():
		in.buf.ClearSelection()
	}

	if from != to && (from == mode.Command || from == mode.Search) {
		in.commandLine = nil
	}
	if from != to {
		in.logger.Debug("mode changed", "from", from.String(), "to", to.String())
	}
}

func selectionKind(m mode.Mode) cursor.SelectionKind {
	switch m {
	case mode.VisualLine:
		return cursor.SelectLine
	case mode.VisualBlock:
		return cursor.SelectBlock
	default:
		return cursor.SelectCharacter
	}
}

// clampNormal keeps the cursor on a character outside insert-like modes.
func (in *Interpreter) clampNormal() {
	m := in.modes.Current()
	if m == mode.Insert || m == mode.Replace || m.IsVisual() {
		return
	}
	cur := in.buf.Cursor()
	if n := in.buf.LineLen(cur.Row); cur.Col >= n && n > 0 {
		in.buf.SetCursor(cursor.Pos(cur.Row, n-1))
	}
}
