package keymap

import (
	"strings"

	"github.com/dshills/modalkit/internal/engine/motion"
)

// Action is a resolved editor action.
type Action uint16

// Actions. None is the zero value and never appears in a built table.
const (
	None Action = iota

	// Motions.
	CursorLeft
	CursorRight
	CursorUp
	CursorDown
	WordForward
	WordBackward
	WordEnd
	BigWordForward
	BigWordBackward
	BigWordEnd
	LineStart
	LineEnd
	FirstNonBlank
	BufferStart
	BufferEnd
	ParagraphForward
	ParagraphBackward
	SentenceForward
	SentenceBackward
	SectionForward
	SectionBackward
	BracketMatch

	// Character search.
	StartFindForward
	StartFindBackward
	StartTillForward
	StartTillBackward
	RepeatCharSearch
	RepeatCharSearchReverse
	FindChar

	// Operators.
	OperatorDelete
	OperatorChange
	OperatorYank
	OperatorIndent
	OperatorUnindent
	OperatorToggleCase
	OperatorLine
	TextObject

	// Normal mode edits.
	DeleteCharAtCursor
	DeleteCharBeforeCursor
	DeleteLine
	DeleteToEndOfLine
	ChangeToEndOfLine
	ChangeEntireLine
	SubstituteChar
	JoinLines
	YankLine
	YankWord
	YankToEndOfLine
	PutAfter
	PutBefore
	ToggleCase
	Undo
	Redo
	RepeatLastChange

	// Mode entries.
	InsertMode
	InsertAfter
	InsertLineStart
	InsertLineEnd
	InsertLineBelow
	InsertLineAbove
	NormalMode
	CommandMode
	SearchForward
	SearchBackward
	VisualMode
	VisualLineMode
	VisualBlockMode
	ReplaceMode

	// Insert and replace mode.
	InsertChar
	NewLine
	DeleteChar
	DeleteCharForward
	DeleteWordBackward
	InsertTab
	ReplaceChar

	// Visual mode.
	DeleteSelection
	YankSelection
	ChangeSelection

	// Command line and search.
	AppendCommand
	CommandBackspace
	ExecuteCommand
	SearchNext
	SearchPrevious
	SaveFile
	Quit

	// Cancel is produced by the resolver for Escape while something is
	// pending. It cannot be bound.
	Cancel

	actionCount
)

// TextObjectPrefix starts every text object action name, followed by the
// object code: "text_object_iw", "text_object_a(".
const TextObjectPrefix = "text_object_"

var actionNames = [actionCount]string{
	None: "none",

	CursorLeft:        "cursor_left",
	CursorRight:       "cursor_right",
	CursorUp:          "cursor_up",
	CursorDown:        "cursor_down",
	WordForward:       "word_forward",
	WordBackward:      "word_backward",
	WordEnd:           "word_end",
	BigWordForward:    "bigword_forward",
	BigWordBackward:   "bigword_backward",
	BigWordEnd:        "bigword_end",
	LineStart:         "line_start",
	LineEnd:           "line_end",
	FirstNonBlank:     "first_non_blank",
	BufferStart:       "buffer_start",
	BufferEnd:         "buffer_end",
	ParagraphForward:  "paragraph_forward",
	ParagraphBackward: "paragraph_backward",
	SentenceForward:   "sentence_forward",
	SentenceBackward:  "sentence_backward",
	SectionForward:    "section_forward",
	SectionBackward:   "section_backward",
	BracketMatch:      "bracket_match",

	StartFindForward:        "start_find_char_forward",
	StartFindBackward:       "start_find_char_backward",
	StartTillForward:        "start_till_char_forward",
	StartTillBackward:       "start_till_char_backward",
	RepeatCharSearch:        "repeat_char_search",
	RepeatCharSearchReverse: "repeat_char_search_reverse",
	FindChar:                "find_char",

	OperatorDelete:     "operator_delete",
	OperatorChange:     "operator_change",
	OperatorYank:       "operator_yank",
	OperatorIndent:     "operator_indent",
	OperatorUnindent:   "operator_unindent",
	OperatorToggleCase: "operator_toggle_case",
	OperatorLine:       "operator_line",
	TextObject:         "text_object",

	DeleteCharAtCursor:     "delete_char_at_cursor",
	DeleteCharBeforeCursor: "delete_char_before_cursor",
	DeleteLine:             "delete_line",
	DeleteToEndOfLine:      "delete_to_end_of_line",
	ChangeToEndOfLine:      "change_to_end_of_line",
	ChangeEntireLine:       "change_entire_line",
	SubstituteChar:         "substitute_char",
	JoinLines:              "join_lines",
	YankLine:               "yank_line",
	YankWord:               "yank_word",
	YankToEndOfLine:        "yank_to_end_of_line",
	PutAfter:               "put_after",
	PutBefore:              "put_before",
	ToggleCase:             "toggle_case",
	Undo:                   "undo",
	Redo:                   "redo",
	RepeatLastChange:       "repeat_last_change",

	InsertMode:      "insert_mode",
	InsertAfter:     "insert_after",
	InsertLineStart: "insert_line_start",
	InsertLineEnd:   "insert_line_end",
	InsertLineBelow: "insert_line_below",
	InsertLineAbove: "insert_line_above",
	NormalMode:      "normal_mode",
	CommandMode:     "command_mode",
	SearchForward:   "search_forward",
	SearchBackward:  "search_backward",
	VisualMode:      "visual_mode",
	VisualLineMode:  "visual_line_mode",
	VisualBlockMode: "visual_block_mode",
	ReplaceMode:     "replace_mode",

	InsertChar:         "insert_char",
	NewLine:            "new_line",
	DeleteChar:         "delete_char",
	DeleteCharForward:  "delete_char_forward",
	DeleteWordBackward: "delete_word_backward",
	InsertTab:          "insert_tab",
	ReplaceChar:        "replace_char",

	DeleteSelection: "delete_selection",
	YankSelection:   "yank_selection",
	ChangeSelection: "change_selection",

	AppendCommand:    "append_command",
	CommandBackspace: "command_backspace",
	ExecuteCommand:   "execute_command",
	SearchNext:       "search_next",
	SearchPrevious:   "search_previous",
	SaveFile:         "save_file",
	Quit:             "quit",

	Cancel: "cancel",
}

// aliases are older names still accepted in keymap files.
var aliases = map[string]Action{
	"line_first_char":     FirstNonBlank,
	"find_char_forward":   StartFindForward,
	"find_char_backward":  StartFindBackward,
	"till_char_forward":   StartTillForward,
	"till_char_backward":  StartTillBackward,
	"append_search":       AppendCommand,
	"delete_search_char":  CommandBackspace,
	"delete_command_char": CommandBackspace,
	"execute_search":      ExecuteCommand,
}

// unbindable actions exist only as resolver output.
var unbindable = map[Action]bool{
	None:       true,
	FindChar:   true,
	TextObject: true,
	Cancel:     true,
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames)+len(aliases))
	for a, name := range actionNames {
		if !unbindable[Action(a)] {
			m[name] = Action(a)
		}
	}
	for name, a := range aliases {
		m[name] = a
	}
	return m
}()

// String returns the canonical action name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction resolves a bindable action name. Text object names are not
// handled here; see Build.
func ParseAction(name string) (Action, bool) {
	a, ok := actionsByName[strings.TrimSpace(name)]
	return a, ok
}

// IsOperator reports whether a starts an operator-pending sequence.
func (a Action) IsOperator() bool {
	return a >= OperatorDelete && a <= OperatorToggleCase
}

// IsMotion reports whether a moves the cursor and can serve as an operator
// target. Character searches count once their target is known.
func (a Action) IsMotion() bool {
	switch {
	case a >= CursorLeft && a <= BracketMatch:
		return true
	case a == FindChar || a == RepeatCharSearch || a == RepeatCharSearchReverse:
		return true
	}
	return false
}

// IsCharSearchStart reports whether a waits for a target character.
func (a Action) IsCharSearchStart() bool {
	return a >= StartFindForward && a <= StartTillBackward
}

// IsRepeatable reports whether a is recorded for repeat_last_change.
func (a Action) IsRepeatable() bool {
	switch a {
	case DeleteCharAtCursor, DeleteCharBeforeCursor, SubstituteChar,
		DeleteLine, DeleteToEndOfLine, ChangeToEndOfLine, ChangeEntireLine,
		JoinLines,
		InsertMode, InsertAfter, InsertLineStart, InsertLineEnd,
		InsertLineBelow, InsertLineAbove,
		PutAfter, PutBefore,
		ToggleCase:
		return true
	}
	return false
}

var motionKinds = map[Action]motion.Kind{
	CursorLeft:        motion.Left,
	CursorRight:       motion.Right,
	CursorUp:          motion.Up,
	CursorDown:        motion.Down,
	WordForward:       motion.WordForward,
	WordBackward:      motion.WordBackward,
	WordEnd:           motion.WordEnd,
	BigWordForward:    motion.BigWordForward,
	BigWordBackward:   motion.BigWordBackward,
	BigWordEnd:        motion.BigWordEnd,
	LineStart:         motion.LineStart,
	LineEnd:           motion.LineEnd,
	FirstNonBlank:     motion.FirstNonBlank,
	BufferStart:       motion.BufferStart,
	BufferEnd:         motion.BufferEnd,
	ParagraphForward:  motion.ParagraphForward,
	ParagraphBackward: motion.ParagraphBackward,
	SentenceForward:   motion.SentenceForward,
	SentenceBackward:  motion.SentenceBackward,
	SectionForward:    motion.SectionForward,
	SectionBackward:   motion.SectionBackward,
	BracketMatch:      motion.BracketMatch,
}

// MotionKind returns the motion a resolves to. Character searches are not
// included; their target depends on interpreter state.
func (a Action) MotionKind() (motion.Kind, bool) {
	k, ok := motionKinds[a]
	return k, ok
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(1); a < actionCount; a++ {
		if !unbindable[a] {
			out = append(out, a)
		}
	}
	return out
}
