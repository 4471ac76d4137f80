package dispatcher

import (
	"unicode"

	"github.com/dshills/modalkit/internal/engine/buffer"
	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/motion"
	"github.com/dshills/modalkit/internal/engine/textobject"
	"github.com/dshills/modalkit/internal/input/keymap"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/vim"
)

// span is the text an operator acts on. End is exclusive; for linewise
// spans only the rows matter.
type span struct {
	start    cursor.Position
	end      cursor.Position
	linewise bool
}

func (s span) rows() (int, int) {
	return s.start.Row, s.end.Row
}

// beginOperator records the anchor and waits for a target.
func (in *Interpreter) beginOperator(r vim.Resolution) {
	in.anchor = in.buf.Cursor()
	in.modes.Switch(mode.OperatorPending)
}

// cancel handles Escape while something was pending.
func (in *Interpreter) cancel(r vim.Resolution) {
	if r.Operator.IsPresent() || in.modes.Is(mode.OperatorPending) {
		in.abortOperator("")
		return
	}
	in.noop("")
}

// abortOperator leaves operator-pending mode without touching the buffer.
func (in *Interpreter) abortOperator(msg string) {
	in.state = in.state.Reset()
	in.modes.Switch(mode.Normal)
	in.buf.SetCursor(in.anchor)
	in.clampNormal()
	in.outcome = Aborted
	if msg != "" {
		in.setStatus(msg)
	}
}

// applyOperator resolves r into a span and applies op to it.
func (in *Interpreter) applyOperator(op vim.Operator, r vim.Resolution) {
	sp, ok := in.operatorSpan(op, r)
	if !ok {
		in.abortOperator(in.status)
		return
	}
	if op.LinewiseOnly() {
		sp.linewise = true
	}

	in.runOperator(op, sp)

	if op.EntersInsert() {
		in.modes.Switch(mode.Insert)
		return
	}
	in.modes.Switch(mode.Normal)
	in.clampNormal()
}

// operatorSpan computes the span for a doubled operator, a text object or
// a motion. The cursor is not moved.
func (in *Interpreter) operatorSpan(op vim.Operator, r vim.Resolution) (span, bool) {
	in.buf.SetCursor(in.anchor)
	anchor := in.buf.Cursor()

	switch r.Action {
	case keymap.OperatorLine:
		if r.Keys != op.LineKey() {
			return span{}, false
		}
		return span{start: cursor.Pos(anchor.Row, 0), end: cursor.Pos(anchor.Row, 0), linewise: true}, true

	case keymap.TextObject:
		rng, ok := textobject.FindSpec(in.buf, anchor, r.Binding.TextObject).Get()
		if !ok || !rng.IsValid() || rng.IsEmpty() {
			return span{}, false
		}
		return span{start: rng.Start, end: rng.End}, true
	}

	if !r.Action.IsMotion() {
		return span{}, false
	}
	r = in.adjustChangeWord(op, r, anchor)
	t, ok := in.motionTarget(r)
	if !ok {
		return span{}, false
	}

	start, end := cursor.Order(anchor, t.pos)
	if t.linewise {
		return span{start: start, end: end, linewise: true}, true
	}
	if t.inclusive {
		end.Col++
	} else if end.Col == 0 && end.Row > start.Row {
		// An exclusive motion that lands at the start of a later line
		// stops at the end of the line before it.
		end = cursor.Pos(end.Row-1, in.buf.LineLen(end.Row-1))
		if r.Action == keymap.WordForward || r.Action == keymap.BigWordForward {
			end = cursor.Pos(start.Row, in.buf.LineLen(start.Row))
		}
	} else if (r.Action == keymap.WordForward || r.Action == keymap.BigWordForward) && end.Row > start.Row {
		// dw on the last word of a line stops at the end of that line.
		end = cursor.Pos(start.Row, in.buf.LineLen(start.Row))
	}
	end = cursor.Clamp(end, in.buf)

	if start == end {
		return span{}, false
	}
	return span{start: start, end: end}, true
}

// adjustChangeWord makes cw and cW behave like ce and cE when the cursor
// is on a non-blank.
func (in *Interpreter) adjustChangeWord(op vim.Operator, r vim.Resolution, at cursor.Position) vim.Resolution {
	if op != vim.Change {
		return r
	}
	line := in.buf.Line(at.Row)
	if at.Col >= len(line) || unicode.IsSpace(line[at.Col]) {
		return r
	}

	switch r.Action {
	case keymap.WordForward:
		r.Action = keymap.WordEnd
	case keymap.BigWordForward:
		r.Action = keymap.BigWordEnd
	default:
		return r
	}
	// A word end from the last character of a word jumps to the next
	// word; cw on a one-letter word changes only that letter.
	if at.Col+1 >= len(line) || isWordBoundary(r.Action, line[at.Col], line[at.Col+1]) {
		r.Action = keymap.CursorRight
	}
	return r
}

func isWordBoundary(a keymap.Action, cur, next rune) bool {
	if unicode.IsSpace(next) {
		return true
	}
	if a == keymap.BigWordEnd {
		return false
	}
	return motion.IsWordSeparator(cur) != motion.IsWordSeparator(next)
}

// runOperator applies op to sp.
func (in *Interpreter) runOperator(op vim.Operator, sp span) {
	b := in.buf

	switch op {
	case vim.Delete:
		if sp.linewise {
			first, last := sp.rows()
			in.capture(b.DeleteLines(first, last), buffer.YankLine)
			in.toFirstNonBlank()
			return
		}
		in.capture(b.DeleteRange(sp.start, sp.end), charwiseType(sp))

	case vim.Change:
		if sp.linewise {
			first, last := sp.rows()
			in.capture(b.ClearLines(first, last), buffer.YankLine)
			return
		}
		in.capture(b.DeleteRange(sp.start, sp.end), charwiseType(sp))

	case vim.Yank:
		var c buffer.ClipboardContent
		if sp.linewise {
			first, last := sp.rows()
			c = b.YankLines(first, last)
		} else {
			c = b.YankRange(sp.start, sp.end, charwiseType(sp))
		}
		in.publish(c)
		in.setStatus(yankMessage(c))
		b.SetCursor(sp.start)

	case vim.Indent, vim.Unindent:
		first, last := sp.rows()
		b.BeginGroup()
		for row := first; row <= last; row++ {
			if op == vim.Indent {
				b.IndentLine(row)
			} else {
				b.UnindentLine(row)
			}
		}
		b.EndGroup()
		b.SetCursor(cursor.Pos(first, 0))
		in.toFirstNonBlank()

	case vim.ToggleCase:
		start, end := sp.start, sp.end
		if sp.linewise {
			first, last := sp.rows()
			start, end = cursor.Pos(first, 0), cursor.Pos(last, b.LineLen(last))
		}
		text := b.Text(start, end)
		if text == "" {
			in.noop("")
			return
		}
		b.ReplaceRangeKeepCursor(start, end, toggleCase(text))
	}
}

// charwiseType is the clipboard type for a characterwise span: spans that
// cross lines paste back linewise.
func charwiseType(sp span) buffer.YankType {
	if sp.start.Row != sp.end.Row {
		return buffer.YankLine
	}
	return buffer.YankCharacter
}
