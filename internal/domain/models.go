package domain

// Axis selects the scroll axis of a list
type Axis string

const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// Valid reports whether the axis is one of the known values
func (a Axis) Valid() bool {
	return a == AxisVertical || a == AxisHorizontal
}

// Direction is the scroll direction derived from two consecutive samples
type Direction string

const (
	DirectionStationary Direction = "STATIONARY"
	DirectionFront      Direction = "FRONT"  // toward the start of the list
	DirectionBehind     Direction = "BEHIND" // toward the end of the list
)

// Range is the live window of a virtual list.
// Start and End are inclusive item indices; Front and Behind are the
// extents standing in for the skipped items before and after the window.
type Range struct {
	Start  int
	End    int
	Front  int
	Behind int
}

// Len returns the number of live items
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// ScrollStatus is reported on every processed scroll sample
type ScrollStatus struct {
	Top       bool
	Bottom    bool
	Offset    int
	Direction Direction
}

// SizeMode describes what the size ledger has learned about item sizes
type SizeMode int

const (
	SizeModeInit    SizeMode = iota // nothing measured yet
	SizeModeFixed                   // one distinct size seen
	SizeModeDynamic                 // two or more distinct sizes seen
)

func (m SizeMode) String() string {
	switch m {
	case SizeModeInit:
		return "INIT"
	case SizeModeFixed:
		return "FIXED"
	case SizeModeDynamic:
		return "DYNAMIC"
	}
	return "UNKNOWN"
}
