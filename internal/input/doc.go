// Package input groups the packages that turn key events into actions.
//
// # Packages
//
//   - key: key events, canonical key names and the key script notation
//     used by replays and tests
//   - mode: the editing modes and the controller that switches them
//   - keymap: the action vocabulary and per-mode binding tables
//   - vim: the key sequence resolver, a pure state machine that folds one
//     key at a time into at most one resolved action
//
// # Key Sequences
//
// Multi-key sequences like "gg" or "diw" accumulate in the resolver until
// they match a binding, stop being a prefix of any binding, or time out.
// The timeout is checked when the next key arrives, against that key's
// timestamp, so replays with synthetic clocks behave like live input.
//
// # Modal Editing
//
//   - Normal mode: navigation, edits and operators
//   - Operator-pending mode: waiting for the motion or text object
//   - Insert and replace modes: text entry
//   - Visual modes: character, line and block selections
//   - Command and search modes: the ':' '/' and '?' lines
package input
