package virtual

import (
	"vlist/internal/domain"
)

// HandleScroll processes one scroll sample: it classifies the direction,
// emits the scroll status and moves the window when the offset has left
// the buffered region.
func (e *Engine[K]) HandleScroll() {
	offset := e.view.Offset()
	client := e.view.ClientSize()
	scroll := e.view.ScrollSize()

	switch {
	case offset == e.offset:
		e.direction = domain.DirectionStationary
	case offset < e.offset:
		e.direction = domain.DirectionFront
	default:
		e.direction = domain.DirectionBehind
	}
	e.offset = offset

	e.opts.OnScroll(domain.ScrollStatus{
		Top:       e.direction == domain.DirectionFront && offset <= 0,
		Bottom:    e.direction == domain.DirectionBehind && client+offset+1 >= scroll,
		Offset:    offset,
		Direction: e.direction,
	})

	switch e.direction {
	case domain.DirectionFront:
		e.handleFront()
	case domain.DirectionBehind:
		e.handleBehind()
	}
}

func (e *Engine[K]) handleFront() {
	index := e.scrollIndex()
	if index >= e.rng.Start {
		return
	}
	start := max(index-e.opts.Buffer, 0)
	e.RequestRange(start, e.endFor(start))
}

func (e *Engine[K]) handleBehind() {
	index := e.scrollIndex()
	if index < e.rng.Start+e.opts.Buffer {
		return
	}
	e.RequestRange(index, e.endFor(index))
}

// scrollIndex locates the item under the current offset, relative to the
// start of the list content
func (e *Engine[K]) scrollIndex() int {
	return e.IndexAt(e.offset - e.view.ContentOffset())
}
