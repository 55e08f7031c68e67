package bridge

import (
	"vlist/internal/domain"
)

// Element is a scrollable pane placed somewhere inside the screen.
// It keeps its own offsets and content extents; the host sets the content
// size after each render.
type Element struct {
	rect     Rect
	offsetY  int
	offsetX  int
	contentW int
	contentH int
	listeners
}

// NewElement creates a pane occupying rect
func NewElement(rect Rect) *Element {
	return &Element{rect: rect}
}

// Rect returns the pane's screen rectangle
func (e *Element) Rect() Rect {
	return e.rect
}

// SetRect moves or resizes the pane, clamping offsets to the new extents
func (e *Element) SetRect(rect Rect) {
	e.rect = rect
	e.reclamp()
}

// SetContentSize updates the scrollable content extents
func (e *Element) SetContentSize(width, height int) {
	e.contentW = width
	e.contentH = height
	e.reclamp()
}

// Offset returns the scroll offset along axis
func (e *Element) Offset(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return e.offsetX
	}
	return e.offsetY
}

// SetOffset scrolls to offset, clamped to the scrollable range.
// Listeners fire only when the offset actually changes.
func (e *Element) SetOffset(axis domain.Axis, offset int) {
	offset = clamp(offset, 0, e.ScrollSize(axis)-e.ClientSize(axis))
	if axis == domain.AxisHorizontal {
		if offset == e.offsetX {
			return
		}
		e.offsetX = offset
	} else {
		if offset == e.offsetY {
			return
		}
		e.offsetY = offset
	}
	e.notify()
}

// ScrollBy scrolls by delta cells
func (e *Element) ScrollBy(axis domain.Axis, delta int) {
	e.SetOffset(axis, e.Offset(axis)+delta)
}

// ScrollSize returns the total scrollable extent along axis
func (e *Element) ScrollSize(axis domain.Axis) int {
	return max(e.content(axis), e.ClientSize(axis))
}

// ClientSize returns the visible extent along axis
func (e *Element) ClientSize(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return e.rect.Width
	}
	return e.rect.Height
}

// Listen registers a scroll listener
func (e *Element) Listen(fn func()) func() {
	return e.add(fn)
}

func (e *Element) content(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return e.contentW
	}
	return e.contentH
}

// reclamp pulls offsets back inside the content after a resize
func (e *Element) reclamp() {
	for _, axis := range []domain.Axis{domain.AxisVertical, domain.AxisHorizontal} {
		if cur := e.Offset(axis); cur > e.ScrollSize(axis)-e.ClientSize(axis) {
			e.SetOffset(axis, cur)
		}
	}
}
