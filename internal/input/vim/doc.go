// Package vim resolves key tokens into editor actions, one key at a time.
//
// The resolver is a pure state machine: Step takes the current State, one
// Token and the keymap table of the active mode, and returns the next State
// plus at most one Resolution. It never touches the buffer or the mode
// controller; the dispatcher applies resolutions and switches modes.
//
// # Grammar
//
//	operator (motion | text-object | operator)   "dw", "diw", "dd"
//	operator char-search char                    "dfx"
//	motion                                       "w", "gg", "]]"
//	char-search char                             "fx", "T("
//	command                                      "x", "p", "u"
//
// # States
//
//  1. Idle: nothing pending
//  2. AwaitingSequence: a prefix such as "g" waits for the next key
//  3. AwaitingTarget: an operator waits for its motion or text object
//  4. AwaitingChar: f, F, t or T waits for the character to find
//
// A pending sequence expires when the next key arrives more than the
// sequence timeout after the previous one. Escape cancels everything that
// is pending.
//
// # Usage
//
//	r := vim.NewResolver(time.Second)
//	state, res := r.Step(state, vim.TokenFrom(ev), current, km.Table(current))
//	if action, ok := res.Get(); ok {
//	    // dispatch action
//	}
package vim
