package virtual

import (
	"time"
)

// shaper rate-limits calls to a scroll handler
type shaper interface {
	call()
	stop()
}

// direct calls through without shaping
type direct struct {
	fn func()
}

func (d direct) call() { d.fn() }
func (d direct) stop() {}

// debouncer runs fn once calls have been quiet for wait
type debouncer struct {
	sched  Scheduler
	wait   time.Duration
	fn     func()
	cancel func()
}

func (d *debouncer) call() {
	d.stop()
	d.cancel = d.sched.AfterFunc(d.wait, func() {
		d.cancel = nil
		d.fn()
	})
}

func (d *debouncer) stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// throttler runs fn at most once per wait, on the leading edge and once
// more on the trailing edge if calls arrived inside the window
type throttler struct {
	sched   Scheduler
	wait    time.Duration
	fn      func()
	cancel  func()
	pending bool
}

func (t *throttler) call() {
	if t.cancel != nil {
		t.pending = true
		return
	}
	t.fn()
	t.arm()
}

func (t *throttler) arm() {
	t.cancel = t.sched.AfterFunc(t.wait, func() {
		t.cancel = nil
		if t.pending {
			t.pending = false
			t.fn()
			t.arm()
		}
	})
}

func (t *throttler) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.pending = false
}

// newShaper picks debounce over throttle; neither means direct calls
func newShaper(sched Scheduler, debounce, throttle time.Duration, fn func()) shaper {
	switch {
	case debounce > 0:
		return &debouncer{sched: sched, wait: debounce, fn: fn}
	case throttle > 0:
		return &throttler{sched: sched, wait: throttle, fn: fn}
	default:
		return direct{fn: fn}
	}
}
