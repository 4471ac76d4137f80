package dispatcher

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/engine/buffer"
	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/engine/motion"
	"github.com/dshills/modalkit/internal/input/keymap"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/vim"
)

// execute runs one resolved action.
func (in *Interpreter) execute(r vim.Resolution) {
	switch {
	case r.Action == keymap.Cancel:
		in.cancel(r)
		return
	case r.Action.IsOperator():
		in.beginOperator(r)
		return
	case r.Action.IsCharSearchStart():
		// The resolver now waits for the target character.
		return
	}

	if op, ok := r.Operator.Get(); ok {
		in.applyOperator(op, r)
		return
	}
	if in.modes.Is(mode.OperatorPending) {
		// A key with no operator to complete, e.g. after Reload.
		in.abortOperator("")
		return
	}

	if r.Action.IsMotion() {
		in.move(r)
		return
	}
	in.edit(r)
}

// move applies a motion outside operator-pending mode.
func (in *Interpreter) move(r vim.Resolution) {
	t, ok := in.motionTarget(r)
	if !ok {
		return
	}
	in.buf.SetCursor(t.pos)
	in.clampNormal()
}

// target is where a motion lands and how an operator treats the span.
type target struct {
	pos       cursor.Position
	inclusive bool
	linewise  bool
}

// motionTarget computes where r's motion lands from the cursor without
// moving it. Failures are reported as no-ops.
func (in *Interpreter) motionTarget(r vim.Resolution) (target, bool) {
	cur := in.buf.Cursor()

	switch r.Action {
	case keymap.FindChar:
		cs, ok := r.Search.Get()
		if !ok {
			in.noop("")
			return target{}, false
		}
		pos, found := motion.FindChar(in.buf, cur, cs, false)
		if !found {
			in.noop("")
			return target{}, false
		}
		in.lastCharSearch = r.Search
		return target{pos: pos, inclusive: cs.Inclusive()}, true

	case keymap.RepeatCharSearch, keymap.RepeatCharSearchReverse:
		cs, ok := in.lastCharSearch.Get()
		if !ok {
			in.noop("No previous character search")
			return target{}, false
		}
		if r.Action == keymap.RepeatCharSearchReverse {
			cs = cs.Reverse()
		}
		pos, found := motion.FindChar(in.buf, cur, cs, true)
		if !found {
			in.noop("")
			return target{}, false
		}
		return target{pos: pos, inclusive: cs.Inclusive()}, true
	}

	k, ok := r.Action.MotionKind()
	if !ok {
		in.noop("")
		return target{}, false
	}
	pos, err := motion.Apply(in.buf, cur, k)
	if err != nil {
		switch {
		case errors.Is(err, motion.ErrNotOnBracket):
			in.noop("Not on a bracket")
		case errors.Is(err, motion.ErrNoMatchingBracket):
			in.noop("No matching bracket found")
		default:
			in.noop(err.Error())
		}
		return target{}, false
	}
	m := motion.Describe(k)
	return target{pos: pos, inclusive: m.Inclusive, linewise: m.Type == motion.Linewise}, true
}

// edit runs every non-motion action.
func (in *Interpreter) edit(r vim.Resolution) {
	b := in.buf
	cur := b.Cursor()

	switch r.Action {
	// Normal mode edits.
	case keymap.DeleteCharAtCursor:
		in.capture(b.DeleteCharAt(), buffer.YankCharacter)
	case keymap.DeleteCharBeforeCursor:
		in.capture(b.DeleteCharBeforeCursor(), buffer.YankCharacter)
	case keymap.DeleteLine:
		in.capture(b.DeleteLine(), buffer.YankLine)
		in.toFirstNonBlank()
	case keymap.DeleteToEndOfLine:
		in.capture(b.DeleteToEndOfLine(), buffer.YankCharacter)
		in.clampNormal()
	case keymap.ChangeToEndOfLine:
		in.capture(b.DeleteToEndOfLine(), buffer.YankCharacter)
		in.modes.Switch(mode.Insert)
	case keymap.ChangeEntireLine:
		in.capture(b.ClearLines(cur.Row, cur.Row), buffer.YankLine)
		in.modes.Switch(mode.Insert)
	case keymap.SubstituteChar:
		if cur.Col < b.LineLen(cur.Row) {
			in.capture(b.DeleteRange(cur, cursor.Pos(cur.Row, cur.Col+1)), buffer.YankCharacter)
		}
		in.modes.Switch(mode.Insert)
	case keymap.JoinLines:
		if !b.JoinLines() {
			in.noop("")
			return
		}
		in.setStatus("Lines joined")
	case keymap.YankLine:
		in.publish(b.YankLine())
		in.setStatus("Line yanked")
	case keymap.YankWord:
		in.publish(b.YankWord())
		in.setStatus("Word yanked")
	case keymap.YankToEndOfLine:
		in.publish(b.YankToEndOfLine())
		in.setStatus("Yanked to end of line")
	case keymap.PutAfter:
		in.put(true)
	case keymap.PutBefore:
		in.put(false)
	case keymap.ToggleCase:
		in.toggleCaseAtCursor()
	case keymap.Undo:
		if !b.Undo() {
			in.noop("Already at oldest change")
			return
		}
		in.clampNormal()
	case keymap.Redo:
		if !b.Redo() {
			in.noop("Already at newest change")
			return
		}
		in.clampNormal()
	case keymap.RepeatLastChange:
		in.repeatLastChange()

	// Mode entries.
	case keymap.InsertMode:
		in.modes.Switch(mode.Insert)
	case keymap.InsertAfter:
		in.modes.Switch(mode.Insert)
		b.SetCursor(cursor.Pos(cur.Row, min(cur.Col+1, b.LineLen(cur.Row))))
	case keymap.InsertLineStart:
		in.modes.Switch(mode.Insert)
		in.toFirstNonBlank()
	case keymap.InsertLineEnd:
		in.modes.Switch(mode.Insert)
		b.SetCursor(cursor.Pos(cur.Row, b.LineLen(cur.Row)))
	case keymap.InsertLineBelow:
		b.OpenLineBelow()
		in.modes.Switch(mode.Insert)
	case keymap.InsertLineAbove:
		b.OpenLineAbove()
		in.modes.Switch(mode.Insert)
	case keymap.NormalMode:
		in.modes.Switch(mode.Normal)
		in.clampNormal()
	case keymap.CommandMode:
		in.openCommandLine(mode.Command, ':')
	case keymap.SearchForward:
		in.openCommandLine(mode.Search, '/')
	case keymap.SearchBackward:
		in.openCommandLine(mode.Search, '?')
	case keymap.VisualMode, keymap.VisualLineMode, keymap.VisualBlockMode:
		in.toggleVisual(r.Action)
	case keymap.ReplaceMode:
		in.modes.Switch(mode.Replace)

	// Insert and replace mode.
	case keymap.InsertChar:
		b.InsertChar(r.Char)
	case keymap.NewLine:
		b.InsertLineBreak()
	case keymap.DeleteChar:
		if !b.DeleteCharBefore() {
			in.noop("")
		}
	case keymap.DeleteCharForward:
		in.deleteCharForward()
	case keymap.DeleteWordBackward:
		in.deleteWordBackward()
	case keymap.InsertTab:
		b.InsertChar('\t')
	case keymap.ReplaceChar:
		b.ReplaceChar(r.Char)

	// Visual mode.
	case keymap.DeleteSelection:
		c, ok := b.DeleteSelection()
		in.modes.Switch(mode.Normal)
		if !ok {
			in.noop("")
			return
		}
		in.publish(c)
		in.clampNormal()
	case keymap.YankSelection:
		c, ok := b.YankSelection()
		in.modes.Switch(mode.Normal)
		if !ok {
			in.noop("")
			return
		}
		in.publish(c)
		in.setStatus(yankMessage(c))
		in.clampNormal()
	case keymap.ChangeSelection:
		c, ok := b.ChangeSelection()
		in.modes.Switch(mode.Insert)
		if ok {
			in.publish(c)
		}

	// Command line and search.
	case keymap.AppendCommand:
		in.commandLine = append(in.commandLine, r.Char)
	case keymap.CommandBackspace:
		if len(in.commandLine) > 1 {
			in.commandLine = in.commandLine[:len(in.commandLine)-1]
		}
	case keymap.ExecuteCommand:
		in.executeCommandLine()
	case keymap.SearchNext, keymap.SearchPrevious:
		q, ok := in.lastSearch.Get()
		if !ok {
			in.noop("No search results")
			return
		}
		if r.Action == keymap.SearchPrevious {
			q.forward = !q.forward
		}
		in.search(q)
	case keymap.SaveFile:
		in.runCommand("w")
	case keymap.Quit:
		in.runCommand("q")

	default:
		in.noop("")
		in.logger.Debug("unhandled action", "action", r.Action.String())
	}
}

// capture stores text removed by a delete in the clipboard. Nothing is
// stored when nothing was removed.
func (in *Interpreter) capture(text string, typ buffer.YankType) {
	if text == "" {
		in.noop("")
		return
	}
	c := buffer.ClipboardContent{Text: text, Type: typ}
	in.buf.SetClipboard(c)
	in.publish(c)
}

// publish mirrors clipboard content to the system clipboard provider.
func (in *Interpreter) publish(c buffer.ClipboardContent) {
	if in.clip == nil || c.IsEmpty() {
		return
	}
	if err := in.clip.Set(c.Text); err != nil {
		in.logger.Warn("clipboard write failed", "error", err)
	}
}

// put pastes the clipboard. When a provider is configured and holds text
// that differs from the buffer clipboard, the provider's text wins.
func (in *Interpreter) put(after bool) {
	if in.clip != nil {
		text, err := in.clip.Get()
		switch {
		case err != nil:
			in.logger.Warn("clipboard read failed", "error", err)
		case text != "" && text != in.buf.Clipboard().Text:
			typ := buffer.YankCharacter
			if strings.HasSuffix(text, "\n") {
				typ = buffer.YankLine
			}
			in.buf.SetClipboard(buffer.ClipboardContent{Text: text, Type: typ})
		}
	}

	var ok bool
	if after {
		ok = in.buf.PutAfter()
	} else {
		ok = in.buf.PutBefore()
	}
	if !ok {
		in.noop("Nothing to paste")
		return
	}
	if after {
		in.setStatus("Text pasted after cursor")
	} else {
		in.setStatus("Text pasted before cursor")
	}
	in.clampNormal()
}

// toggleCaseAtCursor flips the case of the character under the cursor and
// moves right.
func (in *Interpreter) toggleCaseAtCursor() {
	cur := in.buf.Cursor()
	line := in.buf.Line(cur.Row)
	if cur.Col >= len(line) {
		in.noop("")
		return
	}
	next := cursor.Pos(cur.Row, cur.Col+1)
	in.buf.ReplaceRangeKeepCursor(cur, next, toggleCase(string(line[cur.Col])))
	in.buf.SetCursor(next)
	in.clampNormal()
}

func (in *Interpreter) toFirstNonBlank() {
	cur := in.buf.Cursor()
	pos, _ := motion.Apply(in.buf, cur, motion.FirstNonBlank)
	in.buf.SetCursor(pos)
}

// deleteCharForward deletes the character under the cursor in insert
// mode, joining the next line at the end of a line.
func (in *Interpreter) deleteCharForward() {
	cur := in.buf.Cursor()
	switch {
	case cur.Col < in.buf.LineLen(cur.Row):
		in.buf.DeleteRange(cur, cursor.Pos(cur.Row, cur.Col+1))
	case cur.Row+1 < in.buf.LineCount():
		in.buf.DeleteRange(cur, cursor.Pos(cur.Row+1, 0))
	default:
		in.noop("")
	}
}

// deleteWordBackward deletes from the cursor back over any whitespace and
// then over the word before it, without leaving the line.
func (in *Interpreter) deleteWordBackward() {
	cur := in.buf.Cursor()
	line := in.buf.Line(cur.Row)
	col := min(cur.Col, len(line))
	for col > 0 && unicode.IsSpace(line[col-1]) {
		col--
	}
	for col > 0 && !unicode.IsSpace(line[col-1]) {
		col--
	}
	if col == cur.Col {
		in.noop("")
		return
	}
	in.buf.DeleteRange(cursor.Pos(cur.Row, col), cur)
}

// toggleVisual enters the visual mode for a, or leaves it when already
// there.
func (in *Interpreter) toggleVisual(a keymap.Action) {
	target := mode.Visual
	switch a {
	case keymap.VisualLineMode:
		target = mode.VisualLine
	case keymap.VisualBlockMode:
		target = mode.VisualBlock
	}
	if in.modes.Is(target) {
		in.modes.Switch(mode.Normal)
		in.clampNormal()
		return
	}
	in.modes.Switch(target)
}

func (in *Interpreter) openCommandLine(m mode.Mode, prefix rune) {
	in.modes.Switch(m)
	in.commandLine = []rune{prefix}
}

// executeCommandLine runs the command or search line and returns to
// normal mode.
func (in *Interpreter) executeCommandLine() {
	line := in.commandLine
	in.modes.Switch(mode.Normal)
	in.clampNormal()
	if len(line) == 0 {
		in.noop("")
		return
	}

	body := strings.TrimSpace(string(line[1:]))
	switch line[0] {
	case ':':
		if body == "" {
			in.noop("")
			return
		}
		in.runCommand(body)
	case '/', '?':
		q := searchQuery{pattern: string(line[1:]), forward: line[0] == '/'}
		if q.pattern == "" {
			prev, ok := in.lastSearch.Get()
			if !ok {
				in.noop("No previous search pattern")
				return
			}
			q.pattern = prev.pattern
		}
		in.lastSearch = mo.Some(q)
		in.search(q)
	}
}

func (in *Interpreter) runCommand(cmd string) {
	if in.executor == nil {
		in.noop("Not an editor command: " + cmd)
		return
	}
	if err := in.executor.Execute(cmd); err != nil {
		in.noop(err.Error())
		in.logger.Debug("command failed", "command", cmd, "error", err)
	}
}

// search moves to the next match of q from the cursor.
func (in *Interpreter) search(q searchQuery) {
	pos, ok := in.searcher.Next(in.buf, in.buf.Cursor(), q.pattern, q.forward)
	if !ok {
		in.noop("Pattern not found: " + q.pattern)
		return
	}
	in.buf.SetCursor(pos)

	lister, ok := in.searcher.(MatchLister)
	if !ok {
		in.setStatus(fmt.Sprintf("%c%s", prefixFor(q.forward), q.pattern))
		return
	}
	matches := lister.Matches(in.buf, q.pattern)
	for i, m := range matches {
		if m == pos {
			in.setStatus(fmt.Sprintf("Match %d of %d", i+1, len(matches)))
			return
		}
	}
	in.setStatus(fmt.Sprintf("Found %d matches", len(matches)))
}

func prefixFor(forward bool) rune {
	if forward {
		return '/'
	}
	return '?'
}

func yankMessage(c buffer.ClipboardContent) string {
	if c.Type == buffer.YankLine {
		n := strings.Count(c.Text, "\n")
		if n == 1 {
			return "Line yanked"
		}
		return fmt.Sprintf("%d lines yanked", n)
	}
	return "Text yanked"
}

// toggleCase flips the case of every letter in s.
func toggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}
