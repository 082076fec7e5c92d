package watch

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into one call, fired once no new
// trigger arrived for the configured delay.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending int
	onFire  func(events int)
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Delay() time.Duration {
	if d == nil {
		return 0
	}
	return d.delay
}

func (d *Debouncer) OnFire(fn func(events int)) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.onFire = fn
	d.mu.Unlock()
}

func (d *Debouncer) Trigger() {
	if d == nil {
		return
	}

	d.mu.Lock()
	d.pending++
	if d.timer != nil {
		_ = d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
	d.mu.Unlock()
}

// Stop drops pending triggers without firing.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.timer != nil {
		_ = d.timer.Stop()
		d.timer = nil
	}
	d.pending = 0
	d.mu.Unlock()
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	n := d.pending
	d.pending = 0
	d.timer = nil
	fn := d.onFire
	d.mu.Unlock()

	if fn == nil || n == 0 {
		return
	}
	fn(n)
}
