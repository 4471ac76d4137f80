package keymap

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/dshills/modalkit/internal/engine/textobject"
	"github.com/dshills/modalkit/internal/input/mode"
)

// CharKey is the fallback sequence for printable characters in insert-like
// tables.
const CharKey = "Char"

// Binding is one resolved sequence → action entry.
type Binding struct {
	// Keys is the key sequence, in resolver form ("gg", "Ctrl+r").
	Keys string

	// Action is the resolved action.
	Action Action

	// Name is the action name as configured, aliases included.
	Name string

	// TextObject is set when Action is TextObject.
	TextObject textobject.Spec
}

// Lookup is the read side of a table, as the sequence resolver uses it.
type Lookup interface {
	// Lookup returns the binding for an exact sequence.
	Lookup(seq string) (Binding, bool)

	// HasStrictPrefix reports whether some binding extends seq.
	HasStrictPrefix(seq string) bool

	// ShouldWait reports whether an exact match on seq should still wait
	// for a longer binding.
	ShouldWait(seq string) bool
}

// Table holds the bindings of one mode.
type Table struct {
	mode     mode.Mode
	bindings map[string]Binding
}

// NewTable creates an empty table for m.
func NewTable(m mode.Mode) *Table {
	return &Table{mode: m, bindings: make(map[string]Binding)}
}

// Mode returns the mode the table belongs to.
func (t *Table) Mode() mode.Mode {
	return t.mode
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}

// Add binds keys to b, replacing any previous binding.
func (t *Table) Add(b Binding) {
	t.bindings[b.Keys] = b
}

// Remove unbinds keys.
func (t *Table) Remove(keys string) {
	delete(t.bindings, keys)
}

// Lookup returns the binding for an exact sequence.
func (t *Table) Lookup(seq string) (Binding, bool) {
	b, ok := t.bindings[seq]
	return b, ok
}

// HasStrictPrefix reports whether some binding is longer than seq and
// starts with it.
func (t *Table) HasStrictPrefix(seq string) bool {
	for k := range t.bindings {
		if len(k) > len(seq) && strings.HasPrefix(k, seq) {
			return true
		}
	}
	return false
}

// Bindings returns all bindings sorted by key sequence.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.bindings))
	for _, b := range t.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

// Keymap holds one table per mode.
type Keymap struct {
	tables map[mode.Mode]*Table
}

// Table returns the table for m. Modes without bindings get an empty
// table, never nil.
func (k *Keymap) Table(m mode.Mode) *Table {
	if t, ok := k.tables[m]; ok {
		return t
	}
	return NewTable(m)
}

// Build resolves raw tables (mode name → sequence → action name) into a
// Keymap. An unknown mode name is an error. Entries whose action does not
// resolve are dropped and logged at Warn; an empty action name unbinds the
// sequence.
func Build(raw map[string]map[string]string, logger *slog.Logger) (*Keymap, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	km := &Keymap{tables: make(map[mode.Mode]*Table, len(raw))}
	for name, entries := range raw {
		m, ok := mode.Parse(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
		}
		t := km.tables[m]
		if t == nil {
			t = NewTable(m)
			km.tables[m] = t
		}
		for keys, actionName := range entries {
			if keys == "" || actionName == "" {
				continue
			}
			b, err := resolve(keys, actionName)
			if err != nil {
				logger.Warn("dropping keymap entry",
					"mode", m.String(),
					"keys", keys,
					"action", actionName,
					"error", err)
				continue
			}
			t.Add(b)
		}
	}
	return km, nil
}

// resolve turns one configured entry into a Binding.
func resolve(keys, name string) (Binding, error) {
	name = strings.TrimSpace(name)
	if code, ok := strings.CutPrefix(name, TextObjectPrefix); ok {
		spec, ok := textobject.Parse(code).Get()
		if !ok {
			return Binding{}, fmt.Errorf("%w: %q", ErrUnknownTextObject, code)
		}
		return Binding{Keys: keys, Action: TextObject, Name: name, TextObject: spec}, nil
	}

	a, ok := ParseAction(name)
	if !ok {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return Binding{Keys: keys, Action: a, Name: name}, nil
}

// Merge overlays user tables on base, per mode. An empty action in overlay
// removes the sequence. Neither input is modified.
func Merge(base, overlay map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(base)+len(overlay))
	for m, entries := range base {
		out[m] = make(map[string]string, len(entries))
		for k, v := range entries {
			out[m][k] = v
		}
	}
	for m, entries := range overlay {
		dst := out[m]
		if dst == nil {
			dst = make(map[string]string, len(entries))
			out[m] = dst
		}
		for k, v := range entries {
			if v == "" {
				delete(dst, k)
				continue
			}
			dst[k] = v
		}
	}
	return out
}
