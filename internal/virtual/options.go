package virtual

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"vlist/internal/bridge"
	"vlist/internal/domain"
)

const (
	defaultBottomRetries = 10
	bottomRetryDelay     = 50 * time.Millisecond
)

var (
	// ErrUnknownOption is returned by SetOption for an unrecognised name
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidOption is returned by SetOption when the value has the wrong type
	ErrInvalidOption = errors.New("invalid option value")
)

// OptionName identifies a runtime-configurable option
type OptionName string

const (
	OptionSize         OptionName = "size"
	OptionKeeps        OptionName = "keeps"
	OptionBuffer       OptionName = "buffer"
	OptionWrapper      OptionName = "wrapper"
	OptionScroller     OptionName = "scroller"
	OptionDirection    OptionName = "direction"
	OptionUniqueKeys   OptionName = "uniqueKeys"
	OptionDebounceTime OptionName = "debounceTime"
	OptionThrottleTime OptionName = "throttleTime"
	OptionOnScroll     OptionName = "onScroll"
	OptionOnUpdate     OptionName = "onUpdate"
)

// Options configures an Engine. Zero values are valid defaults.
type Options[K comparable] struct {
	Size         int // size hint for unmeasured items
	Keeps        int // live window item count
	Buffer       int // hysteresis margin in items
	Wrapper      bridge.Box
	Scroller     bridge.Scroller
	Direction    domain.Axis
	UniqueKeys   []K
	DebounceTime time.Duration
	ThrottleTime time.Duration
	OnScroll     func(domain.ScrollStatus)
	OnUpdate     func(domain.Range)

	// Scheduler drives shaping and scroll-to-bottom retries.
	Scheduler Scheduler
	// Logger receives debug output; nil discards it.
	Logger logrus.FieldLogger
	// BottomRetries caps scroll-to-bottom re-checks; <= 0 uses the default.
	BottomRetries int
}

func (o Options[K]) withDefaults() Options[K] {
	if !o.Direction.Valid() {
		o.Direction = domain.AxisVertical
	}
	if o.OnScroll == nil {
		o.OnScroll = func(domain.ScrollStatus) {}
	}
	if o.OnUpdate == nil {
		o.OnUpdate = func(domain.Range) {}
	}
	if o.Scheduler == nil {
		o.Scheduler = timeScheduler{}
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	if o.BottomRetries <= 0 {
		o.BottomRetries = defaultBottomRetries
	}
	return o
}

// SetOption changes one option after construction. The engine is left
// unchanged when an error is returned.
func (e *Engine[K]) SetOption(name OptionName, value any) error {
	switch name {
	case OptionSize:
		v, err := intValue(name, value)
		if err != nil {
			return err
		}
		e.opts.Size = v
		e.ledger.SetHint(v)

	case OptionKeeps:
		v, err := intValue(name, value)
		if err != nil {
			return err
		}
		e.opts.Keeps = v
		e.ledger.SetKeeps(v)

	case OptionBuffer:
		v, err := intValue(name, value)
		if err != nil {
			return err
		}
		e.opts.Buffer = v

	case OptionUniqueKeys:
		keys, ok := value.([]K)
		if !ok {
			return invalid(name, "[]key", value)
		}
		e.opts.UniqueKeys = keys
		if dropped := e.ledger.Prune(keys); dropped > 0 {
			e.log.WithFields(logrus.Fields{
				"dropped": dropped,
				"keys":    len(keys),
			}).Debug("Pruned stale sizes")
		}

	case OptionDirection:
		axis, err := axisValue(value)
		if err != nil {
			return err
		}
		e.opts.Direction = axis
		e.rebind()

	case OptionScroller:
		s, ok := value.(bridge.Scroller)
		if !ok && value != nil {
			return invalid(name, "bridge.Scroller", value)
		}
		e.opts.Scroller = s
		e.rebind()

	case OptionWrapper:
		w, ok := value.(bridge.Box)
		if !ok && value != nil {
			return invalid(name, "bridge.Box", value)
		}
		e.opts.Wrapper = w
		e.rebind()

	case OptionDebounceTime, OptionThrottleTime:
		d, ok := value.(time.Duration)
		if !ok {
			return invalid(name, "time.Duration", value)
		}
		if name == OptionDebounceTime {
			e.opts.DebounceTime = d
		} else {
			e.opts.ThrottleTime = d
		}
		e.reshape()

	case OptionOnScroll:
		fn, ok := value.(func(domain.ScrollStatus))
		if !ok || fn == nil {
			return invalid(name, "func(domain.ScrollStatus)", value)
		}
		e.opts.OnScroll = fn

	case OptionOnUpdate:
		fn, ok := value.(func(domain.Range))
		if !ok || fn == nil {
			return invalid(name, "func(domain.Range)", value)
		}
		e.opts.OnUpdate = fn

	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return nil
}

func intValue(name OptionName, value any) (int, error) {
	v, ok := value.(int)
	if !ok {
		return 0, invalid(name, "int", value)
	}
	return v, nil
}

func axisValue(value any) (domain.Axis, error) {
	var axis domain.Axis
	switch v := value.(type) {
	case domain.Axis:
		axis = v
	case string:
		axis = domain.Axis(v)
	default:
		return "", invalid(OptionDirection, "domain.Axis", value)
	}
	if !axis.Valid() {
		return "", fmt.Errorf("%w: direction %q", ErrInvalidOption, axis)
	}
	return axis, nil
}

func invalid(name OptionName, want string, got any) error {
	return fmt.Errorf("%w: %s expects %s, got %T", ErrInvalidOption, name, want, got)
}
