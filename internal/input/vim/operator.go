package vim

import "github.com/dshills/modalkit/internal/input/keymap"

// Operator is a Vim operator: a command that acts on the range a following
// motion or text object describes.
type Operator uint8

// Standard Vim operators.
const (
	// Delete removes text (d).
	Delete Operator = iota
	// Change removes text and enters insert mode (c).
	Change
	// Yank copies text (y).
	Yank
	// Indent shifts lines right (>).
	Indent
	// Unindent shifts lines left (<).
	Unindent
	// ToggleCase flips letter case (g~).
	ToggleCase
)

type operatorInfo struct {
	// name is the operator identifier.
	name string

	// lineKey is the key that, typed again, applies the operator to the
	// current line: "dd", "g~~".
	lineKey string

	// action is the keymap action that starts the operator.
	action keymap.Action

	changesText  bool
	entersInsert bool
	linewiseOnly bool
}

var operators = [...]operatorInfo{
	Delete:     {name: "delete", lineKey: "d", action: keymap.OperatorDelete, changesText: true},
	Change:     {name: "change", lineKey: "c", action: keymap.OperatorChange, changesText: true, entersInsert: true},
	Yank:       {name: "yank", lineKey: "y", action: keymap.OperatorYank},
	Indent:     {name: "indent", lineKey: ">", action: keymap.OperatorIndent, changesText: true, linewiseOnly: true},
	Unindent:   {name: "unindent", lineKey: "<", action: keymap.OperatorUnindent, changesText: true, linewiseOnly: true},
	ToggleCase: {name: "toggle_case", lineKey: "~", action: keymap.OperatorToggleCase, changesText: true},
}

// String returns the operator name.
func (o Operator) String() string {
	if int(o) < len(operators) {
		return operators[o].name
	}
	return "unknown"
}

// LineKey returns the key that doubles the operator.
func (o Operator) LineKey() string {
	return operators[o].lineKey
}

// Action returns the keymap action that starts o.
func (o Operator) Action() keymap.Action {
	return operators[o].action
}

// ChangesText reports whether o modifies the buffer.
func (o Operator) ChangesText() bool {
	return operators[o].changesText
}

// EntersInsert reports whether o leaves the editor in insert mode.
func (o Operator) EntersInsert() bool {
	return operators[o].entersInsert
}

// LinewiseOnly reports whether o always acts on whole lines, whatever
// the motion.
func (o Operator) LinewiseOnly() bool {
	return operators[o].linewiseOnly
}

// OperatorFor returns the operator an action starts.
func OperatorFor(a keymap.Action) (Operator, bool) {
	for i, info := range operators {
		if info.action == a {
			return Operator(i), true
		}
	}
	return 0, false
}
