package strip

import (
	"sort"

	"github.com/agilescientific/striplog/core"
)

// Striplog is an ordered sequence of intervals sharing one direction
// convention (depth, elevation, or none for point samples).
//
// The ordering invariant holds from construction onward: intervals are
// sorted by top consistent with the order, and every interval's own order
// agrees with the striplog's. Mutating operations either preserve the
// invariant or fail without visible partial mutation.
//
// A Striplog assumes exclusive single-writer access; there is no internal
// locking.
type Striplog struct {
	list   []core.Interval
	order  core.Order
	source string
}

// New builds a Striplog from a non-empty interval list. The input is
// deep-copied. By default the order is auto-detected: all points gives
// OrderNone, all base>=top gives OrderDepth, all base<=top gives
// OrderElevation, and anything mixed is ErrAmbiguousOrder. Declaring an
// order with WithOrder skips detection but still validates the data.
// Complexity: O(n log n).
func New(intervals []core.Interval, opts ...Option) (*Striplog, error) {
	if len(intervals) == 0 {
		return nil, ErrEmptyStriplog
	}

	cfg := config{order: core.OrderAuto}
	for _, opt := range opts {
		opt(&cfg)
	}

	list := copyIntervals(intervals)

	order := cfg.order
	if order == core.OrderAuto {
		var err error
		if order, err = detectOrder(list); err != nil {
			return nil, err
		}
	} else if err := validateOrder(list, order); err != nil {
		return nil, err
	}

	sortIntervals(list, order)
	return &Striplog{list: list, order: order, source: cfg.source}, nil
}

// detectOrder infers the direction convention from tops and bases.
func detectOrder(list []core.Interval) (core.Order, error) {
	points, down, up := true, true, true
	for _, iv := range list {
		t, b := iv.Top().Z(), iv.Base().Z()
		if b != t {
			points = false
		}
		if b < t {
			down = false
		}
		if b > t {
			up = false
		}
	}
	switch {
	case points:
		return core.OrderNone, nil
	case down:
		return core.OrderDepth, nil
	case up:
		return core.OrderElevation, nil
	default:
		return core.OrderAuto, ErrAmbiguousOrder
	}
}

// validateOrder checks every interval against a declared order.
func validateOrder(list []core.Interval, order core.Order) error {
	for _, iv := range list {
		t, b := iv.Top().Z(), iv.Base().Z()
		switch order {
		case core.OrderNone:
			if b != t {
				return ErrOrderViolation
			}
		case core.OrderDepth:
			if b < t {
				return ErrOrderViolation
			}
		case core.OrderElevation:
			if b > t {
				return ErrOrderViolation
			}
		default:
			return ErrOrderViolation
		}
	}
	return nil
}

// sortIntervals sorts by top: ascending for depth and none, descending for
// elevation. The sort is stable so equal tops keep their input order.
func sortIntervals(list []core.Interval, order core.Order) {
	if order == core.OrderElevation {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Top().Z() > list[j].Top().Z()
		})
		return
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Top().Z() < list[j].Top().Z()
	})
}

// copyIntervals deep-copies a slice of intervals.
func copyIntervals(in []core.Interval) []core.Interval {
	out := make([]core.Interval, len(in))
	for i, iv := range in {
		out[i] = iv.Copy()
	}
	return out
}

// Len returns the number of intervals.
func (s *Striplog) Len() int { return len(s.list) }

// Order returns the striplog's direction convention.
func (s *Striplog) Order() core.Order { return s.order }

// Source returns the provenance label, or "".
func (s *Striplog) Source() string { return s.source }

// Interval returns a copy of the i-th interval (0-based, in striplog
// order). Panics on an out-of-range index, like slice indexing.
func (s *Striplog) Interval(i int) core.Interval { return s.list[i].Copy() }

// Intervals returns a deep copy of the interval sequence.
func (s *Striplog) Intervals() []core.Interval { return copyIntervals(s.list) }

// Copy returns a deep copy of the striplog.
func (s *Striplog) Copy() *Striplog {
	return &Striplog{list: copyIntervals(s.list), order: s.order, source: s.source}
}

// Append adds one interval, re-sorts, and re-validates the ordering
// invariant. On error the striplog is unchanged.
func (s *Striplog) Append(iv core.Interval) error {
	if err := validateOrder([]core.Interval{iv}, s.order); err != nil {
		return err
	}
	list := append(copyIntervals(s.list), iv.Copy())
	sortIntervals(list, s.order)
	s.list = list
	return nil
}

// Extend adds every interval of another striplog, which must share the
// same order. On error the striplog is unchanged.
func (s *Striplog) Extend(other *Striplog) error {
	if err := validateOrder(other.list, s.order); err != nil {
		return err
	}
	list := append(copyIntervals(s.list), copyIntervals(other.list)...)
	sortIntervals(list, s.order)
	s.list = list
	return nil
}
