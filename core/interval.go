package core

import (
	"fmt"
	"math"
	"strings"
)

// Interval is a top-to-base span (or a degenerate point) carrying content:
// an ordered component list (the first component is the primary), a free-
// text description, and a generic data map.
//
// Intervals are value types; Copy gives a fully independent deep copy.
// The zero Interval is a point at depth 0 with no content.
type Interval struct {
	top         Position
	base        Position
	description string
	components  []Component
	data        map[string]Value
}

// IntervalOption configures interval content at construction.
type IntervalOption func(*Interval)

// WithDescription sets the free-text description.
func WithDescription(d string) IntervalOption {
	return func(iv *Interval) { iv.description = d }
}

// WithComponents sets the ordered component list. The slice is copied; the
// first component becomes the primary.
func WithComponents(cs ...Component) IntervalOption {
	return func(iv *Interval) {
		iv.components = make([]Component, len(cs))
		for i, c := range cs {
			iv.components[i] = c.Copy()
		}
	}
}

// WithData sets the generic data map. The map is copied.
func WithData(data map[string]Value) IntervalOption {
	return func(iv *Interval) {
		if len(data) == 0 {
			return
		}
		iv.data = make(map[string]Value, len(data))
		for k, v := range data {
			iv.data[k] = v
		}
	}
}

// NewInterval builds an Interval spanning top to base.
// Complexity: O(len(components) + len(data)).
func NewInterval(top, base Position, opts ...IntervalOption) Interval {
	iv := Interval{top: top.Copy(), base: base.Copy()}
	for _, opt := range opts {
		opt(&iv)
	}
	return iv
}

// PointAt builds a degenerate Interval whose base equals its top.
func PointAt(p Position, opts ...IntervalOption) Interval {
	return NewInterval(p, p, opts...)
}

// Between is shorthand for NewInterval(At(top), At(base), ...): a span
// between two raw depths with no positional uncertainty.
func Between(top, base float64, opts ...IntervalOption) Interval {
	return NewInterval(At(top), At(base), opts...)
}

// Top returns the top Position.
func (iv Interval) Top() Position { return iv.top.Copy() }

// Base returns the base Position.
func (iv Interval) Base() Position { return iv.base.Copy() }

// SetTop replaces the top Position.
func (iv *Interval) SetTop(p Position) { iv.top = p.Copy() }

// SetBase replaces the base Position.
func (iv *Interval) SetBase(p Position) { iv.base = p.Copy() }

// Description returns the free-text description.
func (iv Interval) Description() string { return iv.description }

// SetDescription replaces the free-text description.
func (iv *Interval) SetDescription(d string) { iv.description = d }

// Components returns a deep copy of the ordered component list.
func (iv Interval) Components() []Component {
	if iv.components == nil {
		return nil
	}
	cp := make([]Component, len(iv.components))
	for i, c := range iv.components {
		cp[i] = c.Copy()
	}
	return cp
}

// SetComponents replaces the ordered component list.
func (iv *Interval) SetComponents(cs []Component) {
	iv.components = nil
	if len(cs) == 0 {
		return
	}
	iv.components = make([]Component, len(cs))
	for i, c := range cs {
		iv.components[i] = c.Copy()
	}
}

// Primary returns the first component and whether one exists.
func (iv Interval) Primary() (Component, bool) {
	if len(iv.components) == 0 {
		return Component{}, false
	}
	return iv.components[0].Copy(), true
}

// Data returns a copy of the generic data map, or nil if empty.
func (iv Interval) Data() map[string]Value {
	if iv.data == nil {
		return nil
	}
	cp := make(map[string]Value, len(iv.data))
	for k, v := range iv.data {
		cp[k] = v
	}
	return cp
}

// PutData stores key=value into the interval's data map.
func (iv *Interval) PutData(key string, v Value) {
	if iv.data == nil {
		iv.data = make(map[string]Value, 1)
	}
	iv.data[key] = v
}

// Thickness returns |base.z - top.z|.
func (iv Interval) Thickness() float64 {
	return math.Abs(iv.base.Z() - iv.top.Z())
}

// Middle returns the midpoint depth of the interval.
func (iv Interval) Middle() float64 {
	return (iv.base.Z() + iv.top.Z()) / 2
}

// MinThickness returns the smallest thickness consistent with the
// uncertainty of the top and base.
func (iv Interval) MinThickness() float64 {
	return math.Abs(iv.base.Upper() - iv.top.Lower())
}

// MaxThickness returns the largest thickness consistent with the
// uncertainty of the top and base.
func (iv Interval) MaxThickness() float64 {
	return math.Abs(iv.base.Lower() - iv.top.Upper())
}

// Kind reports whether the interval is a point or a true span.
func (iv Interval) Kind() Kind {
	if iv.Thickness() == 0 {
		return KindPoint
	}
	return KindInterval
}

// Order reports the direction convention implied by the top and base:
// OrderElevation when the top is numerically above the base, else
// OrderDepth (points count as depth-ordered).
func (iv Interval) Order() Order {
	if iv.top.Z() > iv.base.Z() {
		return OrderElevation
	}
	return OrderDepth
}

// Above reports whether iv's top is strictly nearer the datum than other's
// top, respecting iv's order. This is the ordering comparison used to sort
// intervals within a striplog; it considers tops only, not content.
func (iv Interval) Above(other Interval) bool {
	if iv.Order() == OrderElevation {
		return iv.top.Z() > other.top.Z()
	}
	return iv.top.Z() < other.top.Z()
}

// SameTop reports whether both intervals start at the same depth. This is
// the (intentional) equality used for ordering; it ignores all content.
func (iv Interval) SameTop(other Interval) bool {
	return iv.top.Equal(other.top)
}

// Summary describes the interval as "<thickness> <units> of <content>",
// where content is the component summaries joined with " with ", falling
// back to the description. Returns "" when there is nothing to say.
func (iv Interval) Summary() string {
	parts := make([]string, 0, len(iv.components))
	for _, c := range iv.components {
		if s := c.Summary(); s != "" {
			parts = append(parts, s)
		}
	}
	content := strings.Join(parts, " with ")
	if content == "" {
		content = iv.description
	}
	if content == "" {
		return ""
	}
	return fmt.Sprintf("%.2f %s of %s", iv.Thickness(), iv.top.Units(), content)
}

// Invert flips the interval between depth and elevation conventions in
// place: top and base swap, and each Position's bounds invert.
func (iv *Interval) Invert() {
	iv.top.Invert()
	iv.base.Invert()
	iv.top, iv.base = iv.base, iv.top
}

// Copy returns a deep copy of the interval, including its Positions,
// components, and data map.
func (iv Interval) Copy() Interval {
	cp := Interval{
		top:         iv.top.Copy(),
		base:        iv.base.Copy(),
		description: iv.description,
		components:  iv.Components(),
	}
	if iv.data != nil {
		cp.data = make(map[string]Value, len(iv.data))
		for k, v := range iv.data {
			cp.data[k] = v
		}
	}
	return cp
}
