package bridge

import (
	"github.com/charmbracelet/bubbles/viewport"

	"vlist/internal/domain"
)

// Root is the whole-screen scroller. The vertical axis is backed by a
// bubbles viewport; the horizontal axis is tracked here because the
// viewport renders whole lines.
type Root struct {
	vp       *viewport.Model
	offsetX  int
	contentW int
	lastY    int
	listeners
}

// NewRoot wraps vp as the screen scroll root
func NewRoot(vp *viewport.Model) *Root {
	return &Root{vp: vp, lastY: vp.YOffset}
}

// Root marks this scroller as the screen root
func (r *Root) Root() bool { return true }

// Model returns the underlying viewport
func (r *Root) Model() *viewport.Model {
	return r.vp
}

// Rect covers the whole viewport area
func (r *Root) Rect() Rect {
	return Rect{Width: r.vp.Width, Height: r.vp.Height}
}

// Offset returns the scroll offset along axis
func (r *Root) Offset(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return r.offsetX
	}
	return r.vp.YOffset
}

// SetOffset scrolls to offset; the viewport clamps vertical offsets itself
func (r *Root) SetOffset(axis domain.Axis, offset int) {
	if axis == domain.AxisHorizontal {
		offset = clamp(offset, 0, r.ScrollSize(axis)-r.ClientSize(axis))
		if offset == r.offsetX {
			return
		}
		r.offsetX = offset
		r.notify()
		return
	}
	r.vp.SetYOffset(offset)
	r.Sync()
}

// ScrollBy scrolls by delta cells
func (r *Root) ScrollBy(axis domain.Axis, delta int) {
	r.SetOffset(axis, r.Offset(axis)+delta)
}

// ScrollSize returns the total scrollable extent along axis
func (r *Root) ScrollSize(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return max(r.contentW, r.vp.Width)
	}
	return max(r.vp.TotalLineCount(), r.vp.Height)
}

// ClientSize returns the visible extent along axis
func (r *Root) ClientSize(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return r.vp.Width
	}
	return r.vp.Height
}

// SetContent replaces the viewport content. width is the horizontal
// content extent in cells.
func (r *Root) SetContent(content string, width int) {
	r.contentW = width
	r.vp.SetContent(content)
	if r.offsetX > r.ScrollSize(domain.AxisHorizontal)-r.ClientSize(domain.AxisHorizontal) {
		r.SetOffset(domain.AxisHorizontal, r.offsetX)
	}
	r.Sync()
}

// Resize changes the visible area
func (r *Root) Resize(width, height int) {
	r.vp.Width = width
	r.vp.Height = height
	r.vp.SetYOffset(r.vp.YOffset)
	r.Sync()
}

// Sync notifies listeners if the viewport offset moved since the last check,
// for changes made to the viewport outside this type.
func (r *Root) Sync() {
	if r.vp.YOffset == r.lastY {
		return
	}
	r.lastY = r.vp.YOffset
	r.notify()
}

// Listen registers a scroll listener
func (r *Root) Listen(fn func()) func() {
	return r.add(fn)
}
