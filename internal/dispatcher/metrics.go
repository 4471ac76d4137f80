package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Outcome classifies how a dispatched action ended.
type Outcome uint8

const (
	// Applied means the action took effect.
	Applied Outcome = iota
	// NoOp means the action had nothing to act on (empty clipboard,
	// nothing to undo, motion with no target).
	NoOp
	// Aborted means a pending operator was cancelled or its target was
	// invalid.
	Aborted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoOp:
		return "noop"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-action metrics
	actionMetrics map[string]*ActionMetrics

	// Global counters
	totalDispatches uint64
	totalNoOps      uint64
	totalAborts     uint64
	totalPanics     uint64

	totalDuration time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	NoOpCount     uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastOutcome   Outcome
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records one dispatched action.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, outcome Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	switch outcome {
	case NoOp:
		m.totalNoOps++
	case Aborted:
		m.totalAborts++
	}

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actionMetrics[actionName] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastOutcome = outcome
	if outcome == NoOp {
		am.NoOpCount++
	}
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic(actionName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++
	if am := m.actionMetrics[actionName]; am != nil {
		am.LastOutcome = Aborted
	}
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalNoOps returns how many dispatches had no effect.
func (m *Metrics) TotalNoOps() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalNoOps
}

// TotalAborts returns how many operators were aborted.
func (m *Metrics) TotalAborts() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalAborts
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// ActionStats returns metrics for a specific action.
func (m *Metrics) ActionStats(actionName string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actionMetrics[actionName]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns the top N most dispatched actions.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actions := make([]*ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		c := *am
		actions = append(actions, &c)
	}

	sort.Slice(actions, func(i, j int) bool {
		if actions[i].DispatchCount != actions[j].DispatchCount {
			return actions[i].DispatchCount > actions[j].DispatchCount
		}
		return actions[i].Name < actions[j].Name
	})

	if n > len(actions) {
		n = len(actions)
	}
	return actions[:n]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalNoOps = 0
	m.totalAborts = 0
	m.totalPanics = 0
	m.totalDuration = 0
}
