package vim

import (
	"time"

	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/engine/motion"
	"github.com/dshills/modalkit/internal/input/keymap"
	"github.com/dshills/modalkit/internal/input/mode"
)

// DefaultTimeout is how long a partial sequence waits for its next key.
const DefaultTimeout = time.Second

// Resolver turns tokens into resolutions.
type Resolver struct {
	timeout time.Duration
}

// NewResolver creates a resolver whose partial sequences expire after
// timeout. A non-positive timeout uses DefaultTimeout.
func NewResolver(timeout time.Duration) Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Resolver{timeout: timeout}
}

// Timeout returns the sequence timeout.
func (r Resolver) Timeout() time.Duration {
	return r.timeout
}

// Step feeds one token through the state machine. m is the current mode
// and table its keymap table. At most one resolution is returned; None
// means the token was consumed while waiting, or was not bound.
func (r Resolver) Step(s State, tok Token, m mode.Mode, table keymap.Lookup) (State, mo.Option[Resolution]) {
	none := mo.None[Resolution]()

	hadTarget := false
	if target, ok := s.CharTarget.Get(); ok {
		s.CharTarget = mo.None[CharTarget]()
		if tok.Char && tok.Plain {
			s.LastKey = tok.Time
			cs := motion.CharSearch{Kind: target.Kind, Char: tok.Rune, Forward: target.Forward}
			return s.complete(Resolution{
				Action: keymap.FindChar,
				Keys:   tok.Key,
				Char:   tok.Rune,
				Search: mo.Some(cs),
			})
		}
		hadTarget = true
	}

	if tok.Escape && (hadTarget || s.Operator.IsPresent() || s.Pending != "") {
		res := Resolution{Action: keymap.Cancel, Keys: tok.Key, Operator: s.Operator}
		s = s.Reset()
		s.LastKey = tok.Time
		return s, mo.Some(res)
	}

	if !m.IsSequenceMode() {
		s.Pending = ""
		s.LastKey = tok.Time
		b, ok := lookupSingle(table, tok, m)
		if !ok {
			return s, none
		}
		return s.resolve(b, tok)
	}

	if s.Pending != "" && tok.Time.Sub(s.LastKey) > r.timeout {
		s.Pending = ""
	}
	s.LastKey = tok.Time

	seq := appendToken(s.Pending, tok.Key)
	if b, ok := table.Lookup(seq); ok {
		immediate := m == mode.Normal && b.Action.IsOperator()
		if immediate || !table.ShouldWait(seq) {
			s.Pending = ""
			return s.resolve(b, tok)
		}
		s.Pending = seq
		return s, none
	}

	if table.HasStrictPrefix(seq) {
		s.Pending = seq
		return s, none
	}

	s.Pending = ""
	return s, none
}

// resolve applies the state effects of a resolved binding.
func (s State) resolve(b keymap.Binding, tok Token) (State, mo.Option[Resolution]) {
	res := Resolution{Action: b.Action, Binding: b, Keys: b.Keys, Char: tok.Rune}

	if op, ok := OperatorFor(b.Action); ok {
		s.Operator = mo.Some(op)
		res.Operator = s.Operator
		return s, mo.Some(res)
	}

	if target, ok := charTargetFor(b.Action); ok {
		s.CharTarget = mo.Some(target)
		return s, mo.Some(res)
	}

	return s.complete(res)
}

// complete hands any pending operator to res.
func (s State) complete(res Resolution) (State, mo.Option[Resolution]) {
	res.Operator = s.Operator
	s.Operator = mo.None[Operator]()
	return s, mo.Some(res)
}

// lookupSingle resolves a token outside the sequence modes. Character keys
// without a binding of their own fall back to the table's Char entry: any
// character in replace mode, plain characters in the text entry modes.
func lookupSingle(table keymap.Lookup, tok Token, m mode.Mode) (keymap.Binding, bool) {
	if b, ok := table.Lookup(tok.Key); ok {
		return b, true
	}
	if !tok.Char {
		return keymap.Binding{}, false
	}
	switch {
	case m == mode.Replace:
		return table.Lookup(keymap.CharKey)
	case m.IsTextEntry() && tok.Plain:
		return table.Lookup(keymap.CharKey)
	}
	return keymap.Binding{}, false
}

// appendToken joins tok onto a pending sequence. A single letter followed
// by a single character concatenates ("gg", "iw", `i"`), as do "]]" and
// "[["; anything else is separated by a space.
func appendToken(pending, tok string) string {
	if pending == "" {
		return tok
	}
	if len(pending) == 1 && len(tok) == 1 {
		pair := pending + tok
		if isLetter(pending[0]) || pair == "]]" || pair == "[[" {
			return pair
		}
	}
	return pending + " " + tok
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func charTargetFor(a keymap.Action) (CharTarget, bool) {
	switch a {
	case keymap.StartFindForward:
		return CharTarget{Kind: motion.Find, Forward: true}, true
	case keymap.StartFindBackward:
		return CharTarget{Kind: motion.Find}, true
	case keymap.StartTillForward:
		return CharTarget{Kind: motion.Till, Forward: true}, true
	case keymap.StartTillBackward:
		return CharTarget{Kind: motion.Till}, true
	}
	return CharTarget{}, false
}
