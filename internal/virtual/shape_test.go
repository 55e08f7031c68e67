package virtual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vlist/internal/domain"
)

func TestDebounceRunsOnceAfterQuiet(t *testing.T) {
	sched := &fakeScheduler{}
	calls := 0
	s := newShaper(sched, 20*time.Millisecond, 0, func() { calls++ })

	for i := 0; i < 5; i++ {
		s.call()
		sched.Advance(5 * time.Millisecond)
	}
	require.Zero(t, calls)

	sched.Advance(20 * time.Millisecond)
	require.Equal(t, 1, calls)
}

func TestThrottleLeadingAndTrailing(t *testing.T) {
	sched := &fakeScheduler{}
	calls := 0
	s := newShaper(sched, 0, 10*time.Millisecond, func() { calls++ })

	s.call()
	require.Equal(t, 1, calls, "Leading call runs immediately")
	s.call()
	s.call()
	require.Equal(t, 1, calls)

	sched.Advance(10 * time.Millisecond)
	require.Equal(t, 2, calls, "One trailing call for the burst")

	sched.Advance(10 * time.Millisecond)
	require.Equal(t, 2, calls, "Window closes with nothing pending")

	s.call()
	require.Equal(t, 3, calls)
}

func TestDebounceWinsOverThrottle(t *testing.T) {
	s := newShaper(&fakeScheduler{}, time.Millisecond, time.Millisecond, func() {})
	_, ok := s.(*debouncer)
	require.True(t, ok)

	_, ok = newShaper(&fakeScheduler{}, 0, 0, func() {}).(direct)
	require.True(t, ok)
}

func TestEngineDebouncedScroll(t *testing.T) {
	f := newFixture(100, 5, 2, 50, 250)
	require.NoError(t, f.engine.SetOption(OptionDebounceTime, 16*time.Millisecond))

	f.pane.SetOffset(domain.AxisVertical, 100)
	f.pane.SetOffset(domain.AxisVertical, 300)
	f.pane.SetOffset(domain.AxisVertical, 530)
	require.Empty(t, f.rec.statuses)

	f.sched.Advance(16 * time.Millisecond)
	require.Len(t, f.rec.statuses, 1, "Burst collapses into one sample")
	require.Equal(t, 530, f.rec.lastStatus().Offset)
	require.Equal(t, 10, f.rec.last().Start)
}

func TestEngineThrottledScroll(t *testing.T) {
	f := newFixture(100, 5, 2, 50, 250)
	require.NoError(t, f.engine.SetOption(OptionThrottleTime, 16*time.Millisecond))

	f.pane.SetOffset(domain.AxisVertical, 100)
	f.pane.SetOffset(domain.AxisVertical, 300)
	f.pane.SetOffset(domain.AxisVertical, 530)
	require.Len(t, f.rec.statuses, 1)

	f.sched.Advance(16 * time.Millisecond)
	require.Len(t, f.rec.statuses, 2)
	require.Equal(t, 530, f.rec.lastStatus().Offset)
}
