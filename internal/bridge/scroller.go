// Package bridge adapts terminal scroll containers to the axis-agnostic
// view the virtual list engine consumes.
package bridge

import (
	"vlist/internal/domain"
)

// Rect is a screen-relative rectangle in terminal cells
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// start returns the leading edge of the rect along the axis
func (r Rect) start(axis domain.Axis) int {
	if axis == domain.AxisHorizontal {
		return r.Left
	}
	return r.Top
}

// Box is anything that occupies a rectangle on screen
type Box interface {
	Rect() Rect
}

// Scroller is a scroll container
type Scroller interface {
	Box
	Offset(axis domain.Axis) int
	SetOffset(axis domain.Axis, offset int)
	ScrollSize(axis domain.Axis) int
	ClientSize(axis domain.Axis) int
	// Listen registers fn for offset changes and returns its detach function.
	Listen(fn func()) func()
}

// rooted is implemented by the scroller that owns the whole screen
type rooted interface {
	Root() bool
}

// IsRoot reports whether s is the whole-screen scroll root
func IsRoot(s Scroller) bool {
	r, ok := s.(rooted)
	return ok && r.Root()
}

// listeners is an ordered set of scroll callbacks
type listeners struct {
	nextID int
	ids    []int
	fns    map[int]func()
}

func (l *listeners) add(fn func()) func() {
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	l.nextID++
	id := l.nextID
	l.ids = append(l.ids, id)
	l.fns[id] = fn

	return func() {
		if _, ok := l.fns[id]; !ok {
			return
		}
		delete(l.fns, id)
		for i, v := range l.ids {
			if v == id {
				l.ids = append(l.ids[:i], l.ids[i+1:]...)
				break
			}
		}
	}
}

func (l *listeners) notify() {
	// Copy so a callback may detach itself
	ids := append([]int(nil), l.ids...)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn()
		}
	}
}

func (l *listeners) count() int {
	return len(l.ids)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
