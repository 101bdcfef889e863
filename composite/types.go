package composite

import "errors"

// Sentinel errors for priority compositing.
var (
	// ErrNoAttr indicates Options.Attr was left empty.
	ErrNoAttr = errors.New("composite: a priority attribute is required")

	// ErrAttrNotFound indicates an interval carries the attribute neither
	// in its data map nor on its primary component.
	ErrAttrNotFound = errors.New("composite: attribute not found")

	// ErrAttrNotNumeric indicates the attribute resolved to a non-numeric
	// value.
	ErrAttrNotNumeric = errors.New("composite: attribute must be numeric")

	// ErrUnordered indicates a point-sample striplog, which has no
	// geometry to composite.
	ErrUnordered = errors.New("composite: striplog has no order")
)

// Options controls a compositing pass.
//
// Fields:
//   - Attr    — the priority attribute; resolved as the builtin
//     "thickness", then the interval's data map, then the primary
//     component. Required, and must be numeric everywhere.
//   - Reverse — make the smaller value win instead of the larger.
type Options struct {
	Attr    string
	Reverse bool
}

// DefaultOptions composites on interval thickness, thickest wins.
func DefaultOptions() Options {
	return Options{Attr: "thickness"}
}
