package bridge

import (
	"vlist/internal/domain"
)

// Anchor marks where list content begins inside a scroller's content,
// lead cells after the content origin. Its rect moves as the scroller scrolls.
type Anchor struct {
	scroller Scroller
	axis     domain.Axis
	lead     int
}

// NewAnchor creates an anchor lead cells into scroller's content
func NewAnchor(scroller Scroller, axis domain.Axis, lead int) *Anchor {
	return &Anchor{scroller: scroller, axis: axis, lead: lead}
}

// SetLead moves the anchor
func (a *Anchor) SetLead(lead int) {
	a.lead = lead
}

// Rect returns the screen-relative position of the list origin
func (a *Anchor) Rect() Rect {
	s := a.scroller.Rect()
	rect := Rect{Top: s.Top, Left: s.Left, Width: s.Width, Height: s.Height}
	if a.axis == domain.AxisHorizontal {
		rect.Left += a.lead - a.scroller.Offset(a.axis)
	} else {
		rect.Top += a.lead - a.scroller.Offset(a.axis)
	}
	return rect
}
