package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrClipboardUnavailable indicates the system clipboard cannot be reached.
	ErrClipboardUnavailable = errors.New("system clipboard unavailable")
)
