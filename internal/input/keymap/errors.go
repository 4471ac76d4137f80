package keymap

import "errors"

// Errors returned while building keymaps.
var (
	// ErrUnknownMode indicates a table keyed by a mode name that does not exist.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownAction indicates an action name that does not resolve.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownTextObject indicates a text_object_ action with a bad code.
	ErrUnknownTextObject = errors.New("unknown text object")
)
