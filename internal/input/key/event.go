package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// At returns a copy of the event stamped with t.
func (e Event) At(t time.Time) Event {
	e.Timestamp = t
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPlainChar returns true for a character typed without Ctrl or Alt.
// Shift does not count since it is part of the character.
func (e Event) IsPlainChar() bool {
	return e.IsRune() && !e.Modifiers.Has(ModCtrl|ModAlt)
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// Canonical returns the token keymaps are keyed by, e.g. "a", "A",
// "Ctrl+r", "Escape" or "F5".
func (e Event) Canonical() string {
	var sb strings.Builder
	if e.Modifiers.HasCtrl() {
		sb.WriteString("Ctrl+")
	}
	if e.Modifiers.HasAlt() {
		sb.WriteString("Alt+")
	}

	if e.Key == KeyRune {
		r := e.Rune
		if e.Modifiers.HasShift() {
			r = unicode.ToUpper(r)
		}
		sb.WriteRune(r)
		return sb.String()
	}

	if e.Modifiers.HasShift() {
		sb.WriteString("Shift+")
	}
	sb.WriteString(e.Key.String())
	return sb.String()
}

// String returns the canonical form.
func (e Event) String() string {
	return e.Canonical()
}

// VimString returns a Vim-style string representation.
// Examples: "<Esc>", "<C-s>", "<S-Tab>", "<CR>", "a", "<lt>"
func (e Event) VimString() string {
	if e.IsPlainChar() {
		if e.Rune == '<' {
			return "<lt>"
		}
		if e.Modifiers.HasShift() {
			return string(unicode.ToUpper(e.Rune))
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		keyName = string(e.Rune)
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "CR"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	default:
		keyName = e.Key.String()
	}
	parts = append(parts, keyName)

	return "<" + strings.Join(parts, "-") + ">"
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
