package app

import (
	"fmt"
	"io"
	"time"

	"github.com/dshills/modalkit/internal/engine/cursor"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/mode"
)

// Result is the state of a session after a replay.
type Result struct {
	Lines  []string
	Cursor cursor.Position
	Mode   mode.Mode
	Status string
	// Keys is how many keys were handled before the script ended or a
	// quit command ran.
	Keys int
}

// Replay feeds a key script to the session. Timestamps start at start and
// advance by key.KeyInterval per key, with <wait> adding a longer pause.
func (app *Application) Replay(script string, start time.Time) (Result, error) {
	events, err := key.ParseScript(script, start)
	if err != nil {
		return Result{}, fmt.Errorf("parse key script: %w", err)
	}

	handled := 0
	for _, ev := range events {
		if app.quit {
			break
		}
		app.HandleKey(ev)
		handled++
	}
	app.logger.Debug("replay finished", "keys", handled, "of", len(events))

	return app.Snapshot(handled), nil
}

// Snapshot captures the current session state.
func (app *Application) Snapshot(keys int) Result {
	in := app.interp
	return Result{
		Lines:  in.Buffer().Lines(),
		Cursor: in.Buffer().Cursor(),
		Mode:   in.Mode(),
		Status: in.Status(),
		Keys:   keys,
	}
}

// WriteTo prints the buffer followed by a summary line.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range r.Lines {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "-- cursor %d:%d mode %s", r.Cursor.Row+1, r.Cursor.Col+1, r.Mode)
	total += int64(n)
	if err != nil {
		return total, err
	}
	if r.Status != "" {
		n, err = fmt.Fprintf(w, " status %q", r.Status)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintln(w)
	total += int64(n)
	return total, err
}
