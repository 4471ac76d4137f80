package mode

import "sync"

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Controller tracks the active mode and notifies callbacks on change.
type Controller struct {
	mu sync.RWMutex

	// current is the active mode.
	current Mode

	// previous is the mode before the current one.
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// NewController creates a controller in Normal mode.
func NewController() *Controller {
	return &Controller{}
}

// Current returns the current mode.
func (c *Controller) Current() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Previous returns the mode active before the last switch.
func (c *Controller) Previous() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.previous
}

// Is returns true if the current mode is m.
func (c *Controller) Is(m Mode) bool {
	return c.Current() == m
}

// Switch changes to mode to. Callbacks run synchronously after the switch,
// outside the lock, and also when the mode is unchanged.
func (c *Controller) Switch(to Mode) {
	c.mu.Lock()
	from := c.current
	c.previous = from
	c.current = to
	callbacks := make([]ChangeCallback, len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
func (c *Controller) OnChange(cb ChangeCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, cb)
}

// Reset returns to Normal mode without notifying callbacks.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.previous = c.current
	c.current = Normal
}
