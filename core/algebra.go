package core

import (
	"fmt"
	"strings"
)

// strictlyAbove reports whether depth a is strictly nearer the datum than b
// under the given order: a < b for depth, a > b for elevation.
func strictlyAbove(order Order, a, b float64) bool {
	if order == OrderElevation {
		return a > b
	}
	return a < b
}

// Relationship classifies how other sits relative to iv, using iv's order
// to decide which way is up. Both intervals must share the same order;
// callers must guard mixed-order pairs (explode and the operations built on
// it return ErrOrderMismatch for them).
//
// Boundary tests are strict, so intervals sharing a boundary value with no
// interior overlap classify as RelTouches, and identical intervals as
// RelNone.
// Complexity: O(1).
func (iv Interval) Relationship(other Interval) Relation {
	ord := iv.Order()
	st, sb := iv.top.Z(), iv.base.Z()
	ot, ob := other.top.Z(), other.base.Z()

	topInside := strictlyAbove(ord, st, ot) && strictlyAbove(ord, ot, sb)
	baseInside := strictlyAbove(ord, st, ob) && strictlyAbove(ord, ob, sb)
	aboveBelow := strictlyAbove(ord, ot, st) && strictlyAbove(ord, sb, ob)

	switch {
	case topInside && baseInside:
		return RelContains
	case aboveBelow:
		return RelContainedBy
	case topInside || baseInside:
		return RelPartially
	case st == ob || sb == ot:
		return RelTouches
	default:
		return RelNone
	}
}

// AnyOverlaps reports whether the intervals share interior points:
// the relationship is partially, contains, or containedby.
func (iv Interval) AnyOverlaps(other Interval) bool {
	switch iv.Relationship(other) {
	case RelPartially, RelContains, RelContainedBy:
		return true
	}
	return false
}

// PartiallyOverlaps reports whether exactly one boundary of other lies
// strictly inside iv (or vice versa).
func (iv Interval) PartiallyOverlaps(other Interval) bool {
	return iv.Relationship(other) == RelPartially
}

// CompletelyContains reports whether other lies strictly inside iv.
func (iv Interval) CompletelyContains(other Interval) bool {
	return iv.Relationship(other) == RelContains
}

// IsContainedBy reports whether iv lies strictly inside other.
func (iv Interval) IsContainedBy(other Interval) bool {
	return iv.Relationship(other) == RelContainedBy
}

// Touches reports whether the intervals share a boundary value with no
// interior overlap.
func (iv Interval) Touches(other Interval) bool {
	return iv.Relationship(other) == RelTouches
}

// Spans reports whether depth d falls within the closed span
// [top.z, base.z], respecting the interval's order.
func (iv Interval) Spans(d float64) bool {
	if iv.Order() == OrderElevation {
		return d >= iv.base.Z() && iv.top.Z() >= d
	}
	return d <= iv.base.Z() && iv.top.Z() <= d
}

// SplitAt cuts the interval at depth d, which must be within its span, and
// returns the two pieces. Both pieces keep the interval's components,
// description, and data untouched; the new boundary at d is a plain
// Position with no uncertainty or metadata.
//
// Returns ErrOutsideSpan when d is not spanned.
func (iv Interval) SplitAt(d float64) (upper, lower Interval, err error) {
	if !iv.Spans(d) {
		return Interval{}, Interval{}, fmt.Errorf("core: split at %v: %w", d, ErrOutsideSpan)
	}
	upper = iv.Copy()
	upper.base = At(d)
	lower = iv.Copy()
	lower.top = At(d)
	return upper, lower, nil
}

// explode decomposes two overlapping intervals into three non-overlapping
// pieces covering their union span: upper and lower are the tails nearest
// to and furthest from the datum, middle is the overlap. The middle keeps
// the content of whichever source interval starts lower (later top).
//
// The pair must share an order (ErrOrderMismatch) and at least partially
// overlap; callers guard the overlap precondition.
func (iv Interval) explode(other Interval) (upper, middle, lower Interval, err error) {
	if iv.Order() != other.Order() {
		return Interval{}, Interval{}, Interval{}, ErrOrderMismatch
	}

	ord := iv.Order()
	uppermost, lowermost := iv.Copy(), other.Copy()
	switch {
	case other.Above(iv):
		uppermost, lowermost = other.Copy(), iv.Copy()
	case iv.Above(other):
		// Keep assignment as is.
	case strictlyAbove(ord, other.base.Z(), iv.base.Z()):
		// Shared top: the interval with the higher base is "uppermost"
		// so its base falls inside the other.
		uppermost, lowermost = other.Copy(), iv.Copy()
	}

	if iv.PartiallyOverlaps(other) {
		upper, _, err = uppermost.SplitAt(lowermost.top.Z())
		if err != nil {
			return Interval{}, Interval{}, Interval{}, err
		}
		middle, lower, err = lowermost.SplitAt(uppermost.base.Z())
		if err != nil {
			return Interval{}, Interval{}, Interval{}, err
		}
		return upper, middle, lower, nil
	}

	// One wholly contains the other: split the container at the contained
	// interval's boundaries.
	upperTemp, lower, err := uppermost.SplitAt(lowermost.base.Z())
	if err != nil {
		return Interval{}, Interval{}, Interval{}, err
	}
	upper, _, err = upperTemp.SplitAt(lowermost.top.Z())
	if err != nil {
		return Interval{}, Interval{}, Interval{}, err
	}
	middle = lowermost
	return upper, middle, lower, nil
}

// combineData merges the two intervals' data maps by key. Conflicting keys
// accumulate both values into a list.
func (iv Interval) combineData(other Interval) map[string]Value {
	if iv.data == nil && other.data == nil {
		return nil
	}
	out := make(map[string]Value, len(iv.data)+len(other.data))
	for k, v := range iv.data {
		out[k] = v
	}
	for k, v := range other.data {
		if prev, ok := out[k]; ok {
			out[k] = Accumulate(prev, v)
		} else {
			out[k] = v
		}
	}
	return out
}

// blendDescriptions builds the description for a blended pair:
// "{pct}% {thick} with {pct}% {thin}", proportions by thickness of the
// combined pair, each side falling back to its summary when the free-text
// description is empty. Identical component lists short-circuit to iv's
// own trimmed description.
func (iv Interval) blendDescriptions(other Interval) string {
	thin, thick := iv, other
	if other.Thickness() < iv.Thickness() {
		thin, thick = other, iv
	}
	total := thin.Thickness() + thick.Thickness()
	prop := 50.0
	if total > 0 {
		prop = 100 * thick.Thickness() / total
	}

	if componentsEqual(iv.components, other.components) {
		return strings.Trim(iv.description, " .,")
	}

	d1 := strings.Trim(thick.description, " .,")
	if d1 == "" {
		d1 = thick.Summary()
	}
	d2 := strings.Trim(thin.description, " .,")
	if d2 == "" {
		d2 = thin.Summary()
	}
	if d1 == "" {
		return ""
	}
	return fmt.Sprintf("%.1f%% %s with %.1f%% %s", prop, d1, 100-prop, d2)
}

// componentsEqual compares two component lists element-wise.
func componentsEqual(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// combine rewrites iv's content from the pair (a, b). With blend, the
// component lists union (discovery order, deduplicated by value equality),
// descriptions blend, and data maps merge; without, b's content replaces
// iv's outright.
func (iv *Interval) combine(a, b Interval, blend bool) {
	if !blend {
		iv.components = b.Components()
		iv.description = b.description
		iv.data = b.Data()
		return
	}
	merged := a.Components()
	for _, c := range b.components {
		seen := false
		for _, have := range merged {
			if have.Equal(c) {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, c.Copy())
		}
	}
	iv.components = merged
	iv.description = a.blendDescriptions(b)
	iv.data = a.combineData(b)
}

// Intersect returns the overlap region of the two intervals. With blend
// (the usual case) the result combines both intervals' content; without,
// other's content replaces iv's.
//
// Returns ErrNoOverlap unless the pair at least partially overlaps, and
// ErrOrderMismatch for mixed-order pairs.
// Complexity: O(len(components) + len(data)).
func (iv Interval) Intersect(other Interval, blend bool) (Interval, error) {
	if !iv.AnyOverlaps(other) {
		return Interval{}, ErrNoOverlap
	}
	_, middle, _, err := iv.explode(other)
	if err != nil {
		return Interval{}, err
	}
	middle.combine(iv, other, blend)
	return middle, nil
}

// Merge partitions the combined extent of the two intervals into
// non-overlapping pieces, returned in striplog order (nearest the datum
// first). The middle piece combines content as Intersect does. When the
// pair only partially overlaps and blend is false, two pieces come back
// (the surviving tail of the uppermost interval plus other verbatim), since
// replacement removes the overlap ambiguity; otherwise three. Operands
// sharing a top or base collapse one tail to a point; such zero-thickness
// pieces are discarded, so the result may have fewer pieces.
//
// Returns ErrNoOverlap unless the pair at least partially overlaps, and
// ErrOrderMismatch for mixed-order pairs.
func (iv Interval) Merge(other Interval, blend bool) ([]Interval, error) {
	if !iv.AnyOverlaps(other) {
		return nil, ErrNoOverlap
	}
	upper, middle, lower, err := iv.explode(other)
	if err != nil {
		return nil, err
	}

	selfIsUppermost := iv.top.Equal(upper.top)
	middle.combine(iv, other, blend)

	if iv.PartiallyOverlaps(other) && !blend {
		if selfIsUppermost {
			return nonDegenerate(upper, other.Copy()), nil
		}
		return nonDegenerate(other.Copy(), lower), nil
	}
	return nonDegenerate(upper, middle, lower), nil
}

// nonDegenerate drops zero-thickness pieces, which appear when the
// operands share a boundary (one of the tails collapses to a point).
func nonDegenerate(pieces ...Interval) []Interval {
	out := make([]Interval, 0, len(pieces))
	for _, p := range pieces {
		if p.Thickness() > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Union returns a single interval spanning both operands, content combined
// as in Intersect. The new top and base are plain Positions; uncertainty
// and metadata on the moved boundaries are lost.
//
// The operands must touch or overlap: a union of disjoint intervals would
// silently swallow the gap between them, so it returns ErrNotAdjacent
// instead.
func (iv Interval) Union(other Interval, blend bool) (Interval, error) {
	if !(iv.Touches(other) || iv.AnyOverlaps(other)) {
		return Interval{}, ErrNotAdjacent
	}

	top, base := iv.top.Z(), iv.base.Z()
	if iv.Order() == OrderElevation {
		top = max(top, other.top.Z())
		base = min(base, other.base.Z())
	} else {
		top = min(top, other.top.Z())
		base = max(base, other.base.Z())
	}

	result := iv.Copy()
	result.top = At(top)
	result.base = At(base)
	result.combine(iv, other, blend)
	return result, nil
}

// Difference subtracts other from iv:
//
//   - identical extents: nil (nothing survives distinguishably);
//   - touching or disjoint: iv unchanged, as a single piece;
//   - iv wholly contains other: the upper and lower tails;
//   - iv wholly inside other: nil;
//   - partial overlap: the surviving tail of iv.
//
// Returns ErrOrderMismatch for mixed-order pairs.
func (iv Interval) Difference(other Interval) ([]Interval, error) {
	if iv.Order() != other.Order() {
		return nil, ErrOrderMismatch
	}
	if iv.top.Equal(other.top) && iv.base.Equal(other.base) {
		return nil, nil
	}

	switch iv.Relationship(other) {
	case RelTouches, RelNone:
		return []Interval{iv.Copy()}, nil

	case RelContains:
		upper, _, lower, err := iv.explode(other)
		if err != nil {
			return nil, err
		}
		return []Interval{upper, lower}, nil

	case RelContainedBy:
		return nil, nil

	default: // RelPartially
		if iv.Above(other) {
			upper, _, err := iv.SplitAt(other.top.Z())
			if err != nil {
				return nil, err
			}
			return []Interval{upper}, nil
		}
		if other.Above(iv) {
			_, lower, err := iv.SplitAt(other.base.Z())
			if err != nil {
				return nil, err
			}
			return []Interval{lower}, nil
		}
		// Shared top: the tail below other survives, if any.
		if !iv.Spans(other.base.Z()) {
			return nil, nil
		}
		_, lower, err := iv.SplitAt(other.base.Z())
		if err != nil {
			return nil, err
		}
		return []Interval{lower}, nil
	}
}
