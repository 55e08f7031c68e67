package bridge

import (
	"vlist/internal/domain"
)

// Viewport binds a scroller, the list's wrapper and an axis into the
// single-axis view used by the virtual list engine.
type Viewport struct {
	scroller Scroller
	wrapper  Box
	axis     domain.Axis
	root     bool
}

// New creates a viewport binding. A nil scroller yields a binding whose
// reads are all zero and whose writes are dropped.
func New(scroller Scroller, wrapper Box, axis domain.Axis) *Viewport {
	if !axis.Valid() {
		axis = domain.AxisVertical
	}
	return &Viewport{
		scroller: scroller,
		wrapper:  wrapper,
		axis:     axis,
		root:     scroller != nil && IsRoot(scroller),
	}
}

// Axis returns the bound axis
func (v *Viewport) Axis() domain.Axis {
	return v.axis
}

// Offset returns the current scroll offset
func (v *Viewport) Offset() int {
	if v.scroller == nil {
		return 0
	}
	return v.scroller.Offset(v.axis)
}

// SetOffset scrolls the container
func (v *Viewport) SetOffset(offset int) {
	if v.scroller == nil {
		return
	}
	v.scroller.SetOffset(v.axis, offset)
}

// ScrollSize returns the total scroll extent
func (v *Viewport) ScrollSize() int {
	if v.scroller == nil {
		return 0
	}
	return v.scroller.ScrollSize(v.axis)
}

// ClientSize returns the visible extent
func (v *Viewport) ClientSize() int {
	if v.scroller == nil {
		return 0
	}
	return v.scroller.ClientSize(v.axis)
}

// ContentOffset returns the distance from the scroller's content origin to
// the start of the list. For the root the wrapper rect is already screen
// relative; for an element pane it is taken relative to the pane.
func (v *Viewport) ContentOffset() int {
	if v.scroller == nil || v.wrapper == nil {
		return 0
	}
	wrapper := v.wrapper.Rect().start(v.axis)
	if v.root {
		return wrapper + v.Offset()
	}
	return wrapper - v.scroller.Rect().start(v.axis) + v.Offset()
}

// Listen attaches fn to the scroller and returns the detach function
func (v *Viewport) Listen(fn func()) func() {
	if v.scroller == nil {
		return func() {}
	}
	return v.scroller.Listen(fn)
}
