package virtual

import (
	"fmt"
	"sort"
	"time"

	"vlist/internal/bridge"
	"vlist/internal/domain"
)

// fakeScheduler runs callbacks when the test advances its clock
type fakeScheduler struct {
	now   time.Duration
	seq   int
	tasks []*fakeTask
}

type fakeTask struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.seq++
	t := &fakeTask{at: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward, running every task that becomes due,
// including tasks scheduled by other tasks.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.cancelled = true
		next.fn()
	}
	s.now = target
}

func (s *fakeScheduler) nextDue(limit time.Duration) *fakeTask {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].at != s.tasks[j].at {
			return s.tasks[i].at < s.tasks[j].at
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	if len(s.tasks) == 0 || s.tasks[0].at > limit {
		return nil
	}
	return s.tasks[0]
}

func (s *fakeScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// recorder collects engine callbacks
type recorder struct {
	ranges   []domain.Range
	statuses []domain.ScrollStatus
}

func (r *recorder) onUpdate(rng domain.Range)           { r.ranges = append(r.ranges, rng) }
func (r *recorder) onScroll(status domain.ScrollStatus) { r.statuses = append(r.statuses, status) }

func (r *recorder) last() domain.Range {
	if len(r.ranges) == 0 {
		return domain.Range{}
	}
	return r.ranges[len(r.ranges)-1]
}

func (r *recorder) lastStatus() domain.ScrollStatus {
	if len(r.statuses) == 0 {
		return domain.ScrollStatus{}
	}
	return r.statuses[len(r.statuses)-1]
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("item-%d", i)
	}
	return keys
}

type fixture struct {
	engine *Engine[string]
	pane   *bridge.Element
	sched  *fakeScheduler
	rec    *recorder
	keys   []string
}

// newFixture builds an engine over n keys inside a pane of the given
// client height. Every key is measured at size when size > 0.
func newFixture(n, keeps, buffer, size, client int) *fixture {
	f := &fixture{
		pane:  bridge.NewElement(bridge.Rect{Width: 80, Height: client}),
		sched: &fakeScheduler{},
		rec:   &recorder{},
		keys:  makeKeys(n),
	}
	f.engine = New(Options[string]{
		Keeps:      keeps,
		Buffer:     buffer,
		Scroller:   f.pane,
		UniqueKeys: f.keys,
		OnScroll:   f.rec.onScroll,
		OnUpdate:   f.rec.onUpdate,
		Scheduler:  f.sched,
	})
	if size > 0 {
		for _, k := range f.keys {
			f.engine.OnItemResized(k, size)
		}
		f.pane.SetContentSize(80, n*size)
	}
	return f
}
