package history

import (
	"sync"

	"github.com/dshills/modalkit/internal/engine"
)

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 1000

// Applier replays operations against a text store.
type Applier interface {
	// Apply performs op on the text without recording it.
	Apply(op Operation)
	// SetCursor moves the cursor without recording anything.
	SetCursor(p Position)
}

// History manages undo/redo state for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []Delta
	redoStack []Delta

	// Grouping state
	grouping bool
	group    Delta
	grouped  bool

	maxEntries int
}

// New creates a new history manager.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push adds a delta to the undo stack.
// Clears the redo stack.
func (h *History) Push(d Delta) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		if !h.grouped {
			h.group.CursorBefore = d.CursorBefore
			h.group.Timestamp = d.Timestamp
			h.grouped = true
		}
		h.group.Operations = append(h.group.Operations, d.Operations...)
		h.group.CursorAfter = d.CursorAfter
		return
	}

	h.pushLocked(d)
}

// pushLocked adds a delta without acquiring the lock.
func (h *History) pushLocked(d Delta) {
	h.undoStack = append(h.undoStack, d)
	h.redoStack = nil
	h.trimLocked()
}

// trimLocked evicts the oldest entries beyond maxEntries.
func (h *History) trimLocked() {
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent delta against a.
func (h *History) Undo(a Applier) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return engine.ErrNothingToUndo
	}

	d := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	for _, op := range d.Operations.Invert() {
		a.Apply(op)
	}
	a.SetCursor(d.CursorBefore)

	h.redoStack = append(h.redoStack, d)
	return nil
}

// Redo re-applies the most recently undone delta against a.
func (h *History) Redo(a Applier) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return engine.ErrNothingToRedo
	}

	d := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	for _, op := range d.Operations {
		a.Apply(op)
	}
	a.SetCursor(d.CursorAfter)

	h.undoStack = append(h.undoStack, d)
	h.trimLocked()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// BeginGroup starts a group.
// Deltas pushed while grouping are combined into a single undo unit.
func (h *History) BeginGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.grouped = false
	h.group = Delta{}
}

// EndGroup finishes a group and pushes the combined delta, if any.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}
	h.grouping = false

	if h.grouped && len(h.group.Operations) > 0 {
		h.pushLocked(h.group)
	}
	h.group = Delta{}
	h.grouped = false
}

// IsGrouping returns true if a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// SetMaxEntries changes the undo depth and evicts the oldest entries
// beyond it.
func (h *History) SetMaxEntries(max int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the configured undo depth.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

// Clear discards all undo and redo state.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
}
