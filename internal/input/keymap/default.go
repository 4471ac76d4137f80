package keymap

import (
	"maps"

	"github.com/dshills/modalkit/internal/input/mode"
)

// motionBindings are shared by normal, operator-pending and visual tables.
var motionBindings = map[string]string{
	// Basic
	"h":     "cursor_left",
	"j":     "cursor_down",
	"k":     "cursor_up",
	"l":     "cursor_right",
	"Left":  "cursor_left",
	"Down":  "cursor_down",
	"Up":    "cursor_up",
	"Right": "cursor_right",

	// Words
	"w": "word_forward",
	"b": "word_backward",
	"e": "word_end",
	"W": "bigword_forward",
	"B": "bigword_backward",
	"E": "bigword_end",

	// Line
	"0":    "line_start",
	"$":    "line_end",
	"^":    "first_non_blank",
	"Home": "line_start",
	"End":  "line_end",

	// Document
	"G": "buffer_end",
	"}": "paragraph_forward",
	"{": "paragraph_backward",
	")": "sentence_forward",
	"(": "sentence_backward",
	"%": "bracket_match",

	// Character search
	"f": "start_find_char_forward",
	"F": "start_find_char_backward",
	"t": "start_till_char_forward",
	"T": "start_till_char_backward",
	";": "repeat_char_search",
	",": "repeat_char_search_reverse",
}

// sequenceMotions need the multi-key resolver and only appear in
// sequence modes.
var sequenceMotions = map[string]string{
	"gg": "buffer_start",
	"]]": "section_forward",
	"[[": "section_backward",
}

var normalBindings = map[string]string{
	// Operators
	"d":  "operator_delete",
	"c":  "operator_change",
	"y":  "operator_yank",
	">":  "operator_indent",
	"<":  "operator_unindent",
	"g~": "operator_toggle_case",

	// Edits
	"x":      "delete_char_at_cursor",
	"Delete": "delete_char_at_cursor",
	"X":      "delete_char_before_cursor",
	"D":      "delete_to_end_of_line",
	"C":      "change_to_end_of_line",
	"S":      "change_entire_line",
	"s":      "substitute_char",
	"J":      "join_lines",
	"Y":      "yank_line",
	"p":      "put_after",
	"P":      "put_before",
	"~":      "toggle_case",
	"u":      "undo",
	"Ctrl+r": "redo",
	".":      "repeat_last_change",

	// Modes
	"i":      "insert_mode",
	"a":      "insert_after",
	"I":      "insert_line_start",
	"A":      "insert_line_end",
	"o":      "insert_line_below",
	"O":      "insert_line_above",
	"R":      "replace_mode",
	"v":      "visual_mode",
	"V":      "visual_line_mode",
	"Ctrl+v": "visual_block_mode",
	":":      "command_mode",
	"/":      "search_forward",
	"?":      "search_backward",
	"n":      "search_next",
	"N":      "search_previous",
	"Escape": "normal_mode",

	// File
	"ZZ": "save_file",
	"ZQ": "quit",
}

var operatorPendingBindings = map[string]string{
	// Doubled operators act on the current line.
	"d": "operator_line",
	"c": "operator_line",
	"y": "operator_line",
	">": "operator_line",
	"<": "operator_line",
	"~": "operator_line",

	"Escape": "normal_mode",
}

// textObjectCodes are bound in operator-pending mode as
// "text_object_<code>".
var textObjectCodes = []string{
	"iw", "aw", "iW", "aW",
	"is", "as", "ip", "ap",
	`i"`, `a"`, "i'", "a'", "i`", "a`",
	"i(", "a(", "i)", "a)", "ib", "ab",
	"i[", "a[", "i]", "a]",
	"i{", "a{", "i}", "a}", "iB", "aB",
	"i<", "a<", "i>", "a>",
}

var visualBindings = map[string]string{
	"d":      "delete_selection",
	"x":      "delete_selection",
	"Delete": "delete_selection",
	"y":      "yank_selection",
	"c":      "change_selection",
	"s":      "change_selection",
	"v":      "visual_mode",
	"V":      "visual_line_mode",
	"Ctrl+v": "visual_block_mode",
	"Escape": "normal_mode",
}

var insertBindings = map[string]string{
	CharKey:     "insert_char",
	"Enter":     "new_line",
	"Backspace": "delete_char",
	"Delete":    "delete_char_forward",
	"Ctrl+w":    "delete_word_backward",
	"Tab":       "insert_tab",
	"Left":      "cursor_left",
	"Right":     "cursor_right",
	"Up":        "cursor_up",
	"Down":      "cursor_down",
	"Home":      "line_start",
	"End":       "line_end",
	"Escape":    "normal_mode",
}

var replaceBindings = map[string]string{
	CharKey:     "replace_char",
	"Backspace": "cursor_left",
	"Left":      "cursor_left",
	"Right":     "cursor_right",
	"Up":        "cursor_up",
	"Down":      "cursor_down",
	"Escape":    "normal_mode",
}

var commandBindings = map[string]string{
	CharKey:     "append_command",
	"Backspace": "command_backspace",
	"Enter":     "execute_command",
	"Escape":    "normal_mode",
}

// DefaultTables returns the built-in bindings for every mode, in the raw
// form configuration files use. The result is a fresh copy.
func DefaultTables() map[string]map[string]string {
	normal := merged(motionBindings, sequenceMotions, normalBindings)

	pending := merged(motionBindings, sequenceMotions, operatorPendingBindings)
	for _, code := range textObjectCodes {
		pending[code] = TextObjectPrefix + code
	}

	out := map[string]map[string]string{
		mode.Normal.String():          normal,
		mode.OperatorPending.String(): pending,
		mode.Insert.String():          merged(insertBindings),
		mode.Replace.String():         merged(replaceBindings),
		mode.Command.String():         merged(commandBindings),
		mode.Search.String():          merged(commandBindings),
	}
	for _, m := range []mode.Mode{mode.Visual, mode.VisualLine, mode.VisualBlock} {
		out[m.String()] = merged(motionBindings, visualBindings)
	}
	return out
}

// Default returns the keymap built from DefaultTables.
func Default() *Keymap {
	km, err := Build(DefaultTables(), nil)
	if err != nil {
		panic("keymap: invalid default tables: " + err.Error())
	}
	return km
}

func merged(tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}
