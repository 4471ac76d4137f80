// Package key provides key event types for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers and timestamp
//
// # Canonical Tokens
//
// Keymaps are keyed by the canonical string of an event, which is also
// the token the sequence resolver concatenates:
//
//   - Characters are themselves: "a", "A", "$", " "
//   - Modifiers prefix the key: "Ctrl+r", "Alt+x", "Shift+Tab"
//   - Shift is folded into characters, so Shift+a is "A"
//   - Named keys: "Enter", "Escape", "Backspace", "Tab", "Left", "F5", ...
//
// # Key Scripts
//
// ParseScript reads Vim-style key notation such as "dw<Esc>:wq<CR>" into
// events, for headless replay and tests.
package key
