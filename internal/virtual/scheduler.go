package virtual

import (
	"time"
)

// Scheduler runs fn once after d and returns a function that cancels the
// call if it has not run yet. Hosts with a single UI goroutine should
// deliver fn on that goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// timeScheduler runs callbacks on a timer goroutine. Only suitable when the
// host serialises access to the engine itself.
type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
