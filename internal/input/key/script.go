package key

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Script errors
var (
	ErrUnterminated = errors.New("unterminated <...> in key script")
	ErrInvalidSpec  = errors.New("invalid key specification")
)

const (
	// KeyInterval separates consecutive scripted events.
	KeyInterval = time.Millisecond

	// WaitInterval is how far <wait> advances the script clock. It is
	// longer than the default sequence timeout.
	WaitInterval = 1100 * time.Millisecond
)

// ParseScript parses Vim-style key notation into timestamped events.
//
// Supported notation:
//   - Plain characters type themselves; a literal newline is Enter
//   - Named keys: "<Esc>", "<CR>", "<BS>", "<Tab>", "<Del>", "<Up>", "<F1>", "<Space>"
//   - Modifiers: "<C-r>", "<A-x>", "<S-Tab>", "<C-A-x>"
//   - "<lt>" is a literal '<'
//   - "<wait>" advances the clock by WaitInterval without producing an event
//
// The first event is stamped start and each following event KeyInterval
// later.
func ParseScript(script string, start time.Time) ([]Event, error) {
	var events []Event
	now := start

	emit := func(e Event) {
		events = append(events, e.At(now))
		now = now.Add(KeyInterval)
	}

	for i := 0; i < len(script); {
		r, size := utf8.DecodeRuneInString(script[i:])
		switch r {
		case '<':
			end := strings.IndexByte(script[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("%w at offset %d", ErrUnterminated, i)
			}
			inner := script[i+1 : i+end]
			if strings.EqualFold(inner, "wait") {
				now = now.Add(WaitInterval)
			} else {
				e, err := parseNotation(inner)
				if err != nil {
					return nil, fmt.Errorf("offset %d: %w", i, err)
				}
				emit(e)
			}
			i += end + 1
			continue
		case '\n':
			emit(Event{Key: KeyEnter})
		case '\t':
			emit(Event{Key: KeyTab})
		case '\r':
		default:
			emit(Event{Key: KeyRune, Rune: r})
		}
		i += size
	}
	return events, nil
}

// parseNotation parses the inside of <...>, like "C-s", "S-Tab" or "Esc".
func parseNotation(inner string) (Event, error) {
	if inner == "" {
		return Event{}, fmt.Errorf("%w: <>", ErrInvalidSpec)
	}
	switch strings.ToLower(inner) {
	case "lt":
		return Event{Key: KeyRune, Rune: '<'}, nil
	case "space":
		return Event{Key: KeyRune, Rune: ' '}, nil
	case "bar":
		return Event{Key: KeyRune, Rune: '|'}, nil
	case "bslash":
		return Event{Key: KeyRune, Rune: '\\'}, nil
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// "<C-->" names the minus key.
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in <%s>", ErrInvalidSpec, p, inner)
		}
		mods = mods.With(mod)
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return Event{Key: k, Modifiers: mods}, nil
	}
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}, nil
	}
	return Event{}, fmt.Errorf("%w: <%s>", ErrInvalidSpec, inner)
}
