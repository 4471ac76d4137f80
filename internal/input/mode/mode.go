package mode

import "fmt"

// Mode is an editor mode.
type Mode uint8

const (
	Normal Mode = iota
	Insert
	Visual
	VisualLine
	VisualBlock
	Command
	OperatorPending
	Replace
	Search
)

// All lists every mode in declaration order.
var All = []Mode{Normal, Insert, Visual, VisualLine, VisualBlock, Command, OperatorPending, Replace, Search}

var names = [...]string{
	Normal:          "normal",
	Insert:          "insert",
	Visual:          "visual",
	VisualLine:      "visual-line",
	VisualBlock:     "visual-block",
	Command:         "command",
	OperatorPending: "operator-pending",
	Replace:         "replace",
	Search:          "search",
}

var displayNames = [...]string{
	Normal:          "NORMAL",
	Insert:          "INSERT",
	Visual:          "VISUAL",
	VisualLine:      "VISUAL LINE",
	VisualBlock:     "VISUAL BLOCK",
	Command:         "COMMAND",
	OperatorPending: "O-PENDING",
	Replace:         "REPLACE",
	Search:          "SEARCH",
}

// String returns the mode identifier used in config files.
func (m Mode) String() string {
	if int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	if int(m) < len(displayNames) {
		return displayNames[m]
	}
	return m.String()
}

// Parse returns the mode with the given identifier.
func Parse(name string) (Mode, bool) {
	for i, n := range names {
		if n == name {
			return Mode(i), true
		}
	}
	return Normal, false
}

// IsVisual returns true for the three visual modes.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine || m == VisualBlock
}

// IsSequenceMode returns true for modes that resolve multi-key sequences.
func (m Mode) IsSequenceMode() bool {
	return m == Normal || m == OperatorPending
}

// IsTextEntry returns true for modes where unmapped characters are typed
// into a buffer or the command line.
func (m Mode) IsTextEntry() bool {
	return m == Insert || m == Command || m == Search
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command, Search:
		return CursorBar
	case Replace, OperatorPending:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
