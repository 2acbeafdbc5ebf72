package csscomplete

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period completion requests are coalesced over
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces bursts of calls: every Submit restarts the timer and
// only the last call submitted before the quiet period elapses runs.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *debounced
}

type debounced struct {
	run  func()
	drop func()
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Submit schedules run after the quiet period.
// If another call is submitted first, run never executes and drop (if
// non-nil) is called instead. run executes on its own goroutine.
func (d *Debouncer) Submit(run, drop func()) {
	c := &debounced{run: run, drop: drop}

	d.mu.Lock()
	superseded := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = c
	d.timer = time.AfterFunc(d.delay, func() { d.fire(c) })
	d.mu.Unlock()

	if superseded != nil && superseded.drop != nil {
		superseded.drop()
	}
}

func (d *Debouncer) fire(c *debounced) {
	d.mu.Lock()
	if d.pending != c {
		// Superseded after the timer fired but before we got the lock.
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	c.run()
}

// Stop drops the pending call, if any
func (d *Debouncer) Stop() {
	d.mu.Lock()
	pending := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if pending != nil && pending.drop != nil {
		pending.drop()
	}
}
