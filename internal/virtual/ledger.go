package virtual

import (
	"math"

	"vlist/internal/domain"
)

// calibration is the size-mode state machine. fixed is meaningful only in
// FIXED mode and average only once settled in DYNAMIC mode; the methods
// below are the only writers.
type calibration struct {
	mode     domain.SizeMode
	fixed    int
	average  int
	averaged bool
}

// observe advances the mode for a newly recorded size
func (c *calibration) observe(size int) {
	switch c.mode {
	case domain.SizeModeInit:
		c.mode = domain.SizeModeFixed
		c.fixed = size
	case domain.SizeModeFixed:
		if size != c.fixed {
			c.mode = domain.SizeModeDynamic
			c.fixed = 0
		}
	}
}

// settle stores the one-time average snapshot
func (c *calibration) settle(average int) {
	if c.mode != domain.SizeModeDynamic || c.averaged {
		return
	}
	c.average = average
	c.averaged = true
}

// Ledger records measured item sizes and derives the fallback size for
// items that have not been measured.
type Ledger[K comparable] struct {
	sizes map[K]int
	cal   calibration
	keeps int
	hint  int
}

// NewLedger creates an empty ledger. keeps is the live window size used to
// decide when the average is taken; hint is the configured size hint.
func NewLedger[K comparable](keeps, hint int) *Ledger[K] {
	return &Ledger[K]{
		sizes: make(map[K]int),
		keeps: keeps,
		hint:  hint,
	}
}

// Record stores a measured size. Sizes <= 0 and unchanged sizes are ignored.
// It reports whether the ledger changed.
func (l *Ledger[K]) Record(key K, size int) bool {
	if size <= 0 {
		return false
	}
	if prev, ok := l.sizes[key]; ok && prev == size {
		return false
	}

	l.sizes[key] = size
	l.cal.observe(size)

	if l.cal.mode == domain.SizeModeDynamic && !l.cal.averaged && len(l.sizes) == l.keeps {
		l.cal.settle(l.mean())
	}
	return true
}

// SizeFor returns the recorded size for key or the fallback size
func (l *Ledger[K]) SizeFor(key K) int {
	if size, ok := l.sizes[key]; ok {
		return size
	}
	return l.Fallback()
}

// Fallback is the size assumed for unmeasured items: the fixed size in
// FIXED mode, else the hint, else the average (0 until taken).
func (l *Ledger[K]) Fallback() int {
	if l.cal.mode == domain.SizeModeFixed {
		return l.cal.fixed
	}
	if l.hint > 0 {
		return l.hint
	}
	return l.cal.average
}

// Prune drops entries whose key is not in keys
func (l *Ledger[K]) Prune(keys []K) int {
	keep := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	dropped := 0
	for k := range l.sizes {
		if _, ok := keep[k]; !ok {
			delete(l.sizes, k)
			dropped++
		}
	}
	return dropped
}

// Mode returns the current size mode
func (l *Ledger[K]) Mode() domain.SizeMode {
	return l.cal.mode
}

// IsFixed reports whether fixed-size fast paths apply
func (l *Ledger[K]) IsFixed() bool {
	return l.cal.mode == domain.SizeModeFixed
}

// FixedSize returns the single observed size, or 0 outside FIXED mode
func (l *Ledger[K]) FixedSize() int {
	return l.cal.fixed
}

// Average returns the average snapshot and whether it has been taken
func (l *Ledger[K]) Average() (int, bool) {
	return l.cal.average, l.cal.averaged
}

// Len returns the number of recorded entries
func (l *Ledger[K]) Len() int {
	return len(l.sizes)
}

// SetKeeps updates the window size used for the average trigger
func (l *Ledger[K]) SetKeeps(keeps int) {
	l.keeps = keeps
}

// SetHint updates the configured size hint
func (l *Ledger[K]) SetHint(hint int) {
	l.hint = hint
}

func (l *Ledger[K]) mean() int {
	if len(l.sizes) == 0 {
		return 0
	}
	total := 0
	for _, size := range l.sizes {
		total += size
	}
	return int(math.Round(float64(total) / float64(len(l.sizes))))
}
