package watcher

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long a file must stay unchanged before a
// reload fires.
const DefaultQuietPeriod = 250 * time.Millisecond

// Debouncer runs a callback once events stop arriving for a quiet period.
// Each Trigger restarts the period and replaces the pending callback.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	pending *time.Timer
	gen     uint64
}

// NewDebouncer creates a debouncer; a zero quiet period selects
// DefaultQuietPeriod.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn after the quiet period, dropping any earlier
// pending callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.quiet, func() {
		// A timer that fired while a newer Trigger was stopping it must not run.
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.pending = nil
		}
		d.mu.Unlock()

		if current {
			fn()
		}
	})
}

// Stop drops the pending callback, if any
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
