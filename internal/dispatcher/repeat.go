package dispatcher

import (
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/vim"
)

// lastCommand is the most recent repeatable action and the key that
// produced it.
type lastCommand struct {
	Resolution vim.Resolution
	Event      key.Event
}

// repeatLastChange re-executes the last repeatable action. It runs below
// HandleKey, so the repeat itself is never recorded.
func (in *Interpreter) repeatLastChange() {
	lc, ok := in.lastCommand.Get()
	if !ok {
		in.noop("No command to repeat")
		return
	}

	in.execute(lc.Resolution)
	if in.outcome == Applied {
		in.setStatus("Repeated: " + lc.Resolution.Action.String())
	}
}

// LastCommand returns the action repeat_last_change would run and the key
// that produced it.
func (in *Interpreter) LastCommand() (vim.Resolution, key.Event, bool) {
	lc, ok := in.lastCommand.Get()
	return lc.Resolution, lc.Event, ok
}
