package listview

import (
	"sync"
	"time"
)

// Debouncer delays propagation of a rapidly changing value until it
// has been stable for the configured interval. Each Input cancels any
// pending commit and schedules a new one; only the most recent value
// ever commits. Safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	commit  func(string)
	timer   *time.Timer
	pending string
	stopped bool
}

// NewDebouncer returns a debouncer that invokes commit once a value
// has been stable for delay. A delay of zero or less commits
// synchronously inside Input.
func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	return &Debouncer{delay: delay, commit: commit}
}

// Input feeds a new raw value.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		d.commit(value)
		return
	}
	d.pending = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(value) })
	d.mu.Unlock()
}

func (d *Debouncer) fire(value string) {
	d.mu.Lock()
	// A newer Input may have raced the timer callback; only the
	// latest pending value is allowed through.
	if d.stopped || d.pending != value {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.commit(value)
}

// Flush commits any pending value immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	value := d.pending
	d.mu.Unlock()
	d.commit(value)
}

// Stop cancels any pending commit. After Stop no commit will fire,
// including timers already expired but not yet run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
}
