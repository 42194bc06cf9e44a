package session

import (
	"sync"
	"time"
)

// Debouncer delays a call until a quiet period has elapsed. Every new call
// resets the timer, so only the last one of a burst runs.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	stopped  bool
	// pending counts scheduled calls that were neither cancelled nor finished.
	pending sync.WaitGroup
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce schedules fn after the quiet period, replacing any call that has
// not started yet. It is a no-op after Stop.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.cancelLocked()

	d.pending.Add(1)
	d.timer = time.AfterFunc(d.duration, func() {
		defer d.pending.Done()
		fn()
	})
}

// Cancel drops the scheduled call, if it has not started yet.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.pending.Done()
	}
	d.timer = nil
}

// Stop cancels the scheduled call, refuses new ones and waits for calls that
// already started.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.cancelLocked()
	d.mu.Unlock()

	d.pending.Wait()
}
