// Package core defines the central Position, Component, and Interval types
// for one-dimensional stratigraphic logs, plus the pairwise interval algebra
// (relationship classification, split, intersect, merge, union, difference).
//
// All values live on a single depth-or-elevation axis. Depth order means
// positions increase downwards (top.z <= base.z); elevation order means they
// increase upwards (top.z >= base.z).
//
// This file declares the Order, Kind, and Relation enums and the sentinel
// errors shared by the package.
//
// Errors:
//
//	ErrMissingBounds  - Position built without a middle or an upper/lower pair.
//	ErrUnpairedCoord  - x supplied without y, or vice versa.
//	ErrNoOverlap      - operand pair does not overlap where overlap is required.
//	ErrNotAdjacent    - union of intervals that neither touch nor overlap.
//	ErrOutsideSpan    - split depth falls outside the interval.
//	ErrOrderMismatch  - operands disagree on depth vs elevation order.
package core

import "errors"

// Sentinel errors for core position and interval operations.
var (
	// ErrMissingBounds indicates a Position was constructed without a middle
	// value or an upper/lower pair.
	ErrMissingBounds = errors.New("core: position needs middle, or upper and lower")

	// ErrUnpairedCoord indicates an x coordinate without a y, or vice versa.
	ErrUnpairedCoord = errors.New("core: x and y must be provided together")

	// ErrNoOverlap indicates an operation that requires overlapping operands
	// was given a disjoint pair.
	ErrNoOverlap = errors.New("core: intervals must at least partially overlap")

	// ErrNotAdjacent indicates a union of intervals that neither touch nor
	// overlap.
	ErrNotAdjacent = errors.New("core: intervals must touch or overlap")

	// ErrOutsideSpan indicates a split depth outside the interval's extent.
	ErrOutsideSpan = errors.New("core: depth is outside the interval")

	// ErrOrderMismatch indicates two operands with different orders.
	ErrOrderMismatch = errors.New("core: intervals must have the same order")
)

// Order describes the direction convention of the 1D axis.
type Order int

const (
	// OrderAuto asks the container to detect the order from the data.
	OrderAuto Order = iota

	// OrderDepth means values increase downwards; tops are numerically
	// less than or equal to bases.
	OrderDepth

	// OrderElevation means values increase upwards; tops are numerically
	// greater than or equal to bases.
	OrderElevation

	// OrderNone is a sequence of zero-thickness points.
	OrderNone
)

// String returns the lower-case name of the order.
func (o Order) String() string {
	switch o {
	case OrderDepth:
		return "depth"
	case OrderElevation:
		return "elevation"
	case OrderNone:
		return "none"
	default:
		return "auto"
	}
}

// Kind distinguishes a degenerate point from a true interval.
type Kind int

const (
	// KindPoint is a zero-thickness interval (base == top).
	KindPoint Kind = iota

	// KindInterval is a span with non-zero thickness.
	KindInterval
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k == KindPoint {
		return "point"
	}
	return "interval"
}

// Relation classifies how one interval sits relative to another.
type Relation int

const (
	// RelNone means the intervals are disjoint and share no boundary.
	RelNone Relation = iota

	// RelContains means the other interval lies strictly inside this one.
	RelContains

	// RelContainedBy means this interval lies strictly inside the other.
	RelContainedBy

	// RelPartially means exactly one boundary of the other lies inside.
	RelPartially

	// RelTouches means the intervals share a boundary with no interior overlap.
	RelTouches
)

// String returns the lower-case name of the relation.
func (r Relation) String() string {
	switch r {
	case RelContains:
		return "contains"
	case RelContainedBy:
		return "containedby"
	case RelPartially:
		return "partially"
	case RelTouches:
		return "touches"
	default:
		return "none"
	}
}
