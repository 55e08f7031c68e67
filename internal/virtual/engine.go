// Package virtual computes the live window of a virtual list: which item
// indices must be rendered for the current scroll offset and how much
// padding stands in for the rest.
//
// An Engine is owned by a single goroutine. None of its methods are safe
// for concurrent use, and callbacks run synchronously on the caller.
package virtual

import (
	"github.com/sirupsen/logrus"

	"vlist/internal/bridge"
	"vlist/internal/domain"
)

// Engine tracks scrolling over a keyed list and emits range updates
type Engine[K comparable] struct {
	opts   Options[K]
	log    logrus.FieldLogger
	ledger *Ledger[K]

	rng       domain.Range
	offset    int
	direction domain.Direction

	view      *bridge.Viewport
	shape     shaper
	detach    func()
	listening bool

	cancelBottom func()
}

// New creates an engine, attaches its scroll listener and emits the
// initial range.
func New[K comparable](opts Options[K]) *Engine[K] {
	opts = opts.withDefaults()
	e := &Engine[K]{
		opts:      opts,
		log:       opts.Logger,
		ledger:    NewLedger[K](opts.Keeps, opts.Size),
		direction: domain.DirectionStationary,
		listening: true,
	}
	e.view = bridge.New(opts.Scroller, opts.Wrapper, opts.Direction)
	e.shape = newShaper(opts.Scheduler, opts.DebounceTime, opts.ThrottleTime, e.HandleScroll)
	e.attach()
	e.Refresh()
	return e
}

// Refresh recommits the current start unconditionally, clamped to the
// current key sequence, and emits the resulting range.
func (e *Engine[K]) Refresh() {
	start := max(e.rng.Start, 0)
	e.commit(e.clampStart(start, e.endFor(start)))
}

// RequestRange asks for a window starting at start and ending at end.
// Nothing is emitted when the clamped start equals the committed start.
func (e *Engine[K]) RequestRange(start, end int) {
	start = e.clampStart(start, end)
	if start == e.rng.Start {
		return
	}
	e.commit(start)
}

// clampStart keeps the window full: short lists start at 0 and windows
// cut short by the end of the list are shifted back to keeps items.
func (e *Engine[K]) clampStart(start, end int) int {
	keeps := e.opts.Keeps
	if len(e.opts.UniqueKeys) <= keeps {
		return 0
	}
	if end-start < keeps-1 {
		start = end - keeps + 1
	}
	return max(start, 0)
}

func (e *Engine[K]) commit(start int) {
	end := max(e.endFor(start), start)
	e.rng = domain.Range{
		Start:  start,
		End:    end,
		Front:  e.frontOffset(start),
		Behind: e.behindOffset(end),
	}

	e.log.WithFields(logrus.Fields{
		"start":  e.rng.Start,
		"end":    e.rng.End,
		"front":  e.rng.Front,
		"behind": e.rng.Behind,
		"mode":   e.ledger.Mode().String(),
	}).Debug("Range committed")

	e.opts.OnUpdate(e.rng)
}

// lastIndex is the index of the last key, or keeps-1 while there are no
// keys so a window can be shown before data arrives.
func (e *Engine[K]) lastIndex() int {
	if n := len(e.opts.UniqueKeys); n > 0 {
		return n - 1
	}
	return e.opts.Keeps - 1
}

func (e *Engine[K]) endFor(start int) int {
	return min(start+e.opts.Keeps-1, e.lastIndex())
}

func (e *Engine[K]) frontOffset(start int) int {
	if e.ledger.IsFixed() {
		return start * e.ledger.FixedSize()
	}
	return e.OffsetOf(start)
}

// behindOffset multiplies the fallback size instead of summing measured
// sizes; trailing items are usually unmeasured.
func (e *Engine[K]) behindOffset(end int) int {
	skipped := max(e.lastIndex()-end, 0)
	if e.ledger.IsFixed() {
		return skipped * e.ledger.FixedSize()
	}
	return skipped * e.ledger.Fallback()
}

// OffsetOf returns the summed size of all items before index
func (e *Engine[K]) OffsetOf(index int) int {
	keys := e.opts.UniqueKeys
	offset := 0
	for i := 0; i < index && i < len(keys); i++ {
		offset += e.ledger.SizeFor(keys[i])
	}
	return offset
}

// IndexAt returns the index of the item spanning offset, measured from the
// start of the list content.
func (e *Engine[K]) IndexAt(offset int) int {
	if offset <= 0 {
		return 0
	}
	if e.ledger.IsFixed() {
		return offset / e.ledger.FixedSize()
	}

	low, high := 0, len(e.opts.UniqueKeys)
	for low <= high {
		mid := low + (high-low)/2
		midOffset := e.OffsetOf(mid)
		switch {
		case midOffset == offset:
			return mid
		case midOffset < offset:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	if low > 0 {
		return low - 1
	}
	return 0
}

// OnItemResized feeds a measured size back into the ledger
func (e *Engine[K]) OnItemResized(key K, size int) {
	before := e.ledger.Mode()
	if !e.ledger.Record(key, size) {
		return
	}
	if after := e.ledger.Mode(); after != before {
		e.log.WithFields(logrus.Fields{
			"from": before.String(),
			"to":   after.String(),
			"size": size,
		}).Debug("Size mode changed")
	}
}

// EnableScroll attaches or detaches the scroll listener
func (e *Engine[K]) EnableScroll(enable bool) {
	e.listening = enable
	if enable {
		e.attach()
	} else {
		e.release()
	}
}

// Destroy detaches listeners and cancels pending timers
func (e *Engine[K]) Destroy() {
	e.listening = false
	e.release()
	e.shape.stop()
	e.stopBottom()
}

func (e *Engine[K]) attach() {
	if e.detach != nil {
		return
	}
	e.detach = e.view.Listen(e.shape.call)
}

func (e *Engine[K]) release() {
	if e.detach != nil {
		e.detach()
		e.detach = nil
	}
}

// rebind rebuilds the viewport binding after the scroller, wrapper or
// axis changed, moving the listener to the new scroller.
func (e *Engine[K]) rebind() {
	e.release()
	e.view = bridge.New(e.opts.Scroller, e.opts.Wrapper, e.opts.Direction)
	if e.listening {
		e.attach()
	}
}

// reshape swaps the event shaper after an interval changed
func (e *Engine[K]) reshape() {
	e.release()
	e.shape.stop()
	e.shape = newShaper(e.opts.Scheduler, e.opts.DebounceTime, e.opts.ThrottleTime, e.HandleScroll)
	if e.listening {
		e.attach()
	}
}

// Range returns the committed range
func (e *Engine[K]) Range() domain.Range { return e.rng }

// Direction returns the direction of the last scroll sample
func (e *Engine[K]) Direction() domain.Direction { return e.direction }

// Offset returns the last sampled scroll offset
func (e *Engine[K]) Offset() int { return e.offset }

// Mode returns the size mode
func (e *Engine[K]) Mode() domain.SizeMode { return e.ledger.Mode() }

// IsFixed reports whether all measured items share one size
func (e *Engine[K]) IsFixed() bool { return e.ledger.IsFixed() }

// SizeFor returns the measured or fallback size of key
func (e *Engine[K]) SizeFor(key K) int { return e.ledger.SizeFor(key) }

// ItemSize returns the fallback size for unmeasured items
func (e *Engine[K]) ItemSize() int { return e.ledger.Fallback() }

// Average returns the average size snapshot, if taken
func (e *Engine[K]) Average() (int, bool) { return e.ledger.Average() }

// Keys returns the current key sequence
func (e *Engine[K]) Keys() []K { return e.opts.UniqueKeys }

// Viewport returns the active viewport binding
func (e *Engine[K]) Viewport() *bridge.Viewport { return e.view }
