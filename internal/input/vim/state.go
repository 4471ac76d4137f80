package vim

import (
	"time"

	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/engine/motion"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keymap"
)

// StateKind summarizes what the resolver is waiting for.
type StateKind uint8

const (
	// Idle waits for a new command.
	Idle StateKind = iota
	// AwaitingSequence has a partial key sequence such as "g".
	AwaitingSequence
	// AwaitingTarget has an operator waiting for a motion or text object.
	AwaitingTarget
	// AwaitingChar has f, F, t or T waiting for its character.
	AwaitingChar
)

// String returns the state kind name.
func (k StateKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case AwaitingSequence:
		return "awaiting-sequence"
	case AwaitingTarget:
		return "awaiting-target"
	case AwaitingChar:
		return "awaiting-char"
	default:
		return "unknown"
	}
}

// CharTarget is a character search waiting for its character.
type CharTarget struct {
	Kind    motion.SearchKind
	Forward bool
}

// State is the resolver state between keys.
type State struct {
	// Pending is the partial key sequence typed so far.
	Pending string

	// LastKey is when the previous token arrived.
	LastKey time.Time

	// CharTarget is set after f, F, t or T.
	CharTarget mo.Option[CharTarget]

	// Operator is the operator waiting for its target.
	Operator mo.Option[Operator]
}

// NewState returns an idle state.
func NewState() State {
	return State{
		CharTarget: mo.None[CharTarget](),
		Operator:   mo.None[Operator](),
	}
}

// Kind reports what the state is waiting for. A character target wins
// over a pending operator, which wins over a partial sequence.
func (s State) Kind() StateKind {
	switch {
	case s.CharTarget.IsPresent():
		return AwaitingChar
	case s.Operator.IsPresent():
		return AwaitingTarget
	case s.Pending != "":
		return AwaitingSequence
	default:
		return Idle
	}
}

// Reset drops everything pending. LastKey is kept.
func (s State) Reset() State {
	s.Pending = ""
	s.CharTarget = mo.None[CharTarget]()
	s.Operator = mo.None[Operator]()
	return s
}

// Token is one key as the resolver sees it.
type Token struct {
	// Key is the canonical key string, e.g. "g", "Ctrl+r", "Escape".
	Key string

	// Rune is the character for character keys.
	Rune rune

	// Char is true for character keys, whatever the modifiers.
	Char bool

	// Plain is true for character keys typed without Ctrl or Alt.
	Plain bool

	// Escape is true for a bare Escape.
	Escape bool

	// Time is when the key was pressed.
	Time time.Time
}

// TokenFrom converts a key event to a token.
func TokenFrom(ev key.Event) Token {
	return Token{
		Key:    ev.Canonical(),
		Rune:   ev.Rune,
		Char:   ev.IsRune(),
		Plain:  ev.IsPlainChar(),
		Escape: ev.IsEscape(),
		Time:   ev.Timestamp,
	}
}

// Resolution is a fully resolved action.
type Resolution struct {
	// Action is the resolved action.
	Action keymap.Action

	// Binding is the keymap entry that produced Action. It is zero for
	// FindChar and Cancel.
	Binding keymap.Binding

	// Keys is the sequence that resolved.
	Keys string

	// Char is the typed character for character bindings and FindChar.
	Char rune

	// Search is the character search for FindChar.
	Search mo.Option[motion.CharSearch]

	// Operator is the operator this resolution completes, or for an
	// operator action the operator it starts.
	Operator mo.Option[Operator]
}
