package core

import "math"

// Position is a point on the depth/elevation axis with optional uncertainty
// bounds. It must be built with a middle value, or with both an upper and a
// lower bound (which may differ from the middle, expressing uncertainty).
type Position struct {
	middle    float64
	hasMiddle bool
	upper     float64
	hasUpper  bool
	lower     float64
	hasLower  bool
	x, y      float64
	hasX      bool
	hasY      bool
	units     string
	meta      map[string]string
}

// PositionOption configures a Position before validation.
type PositionOption func(*Position)

// WithMiddle sets the central value of the Position.
func WithMiddle(z float64) PositionOption {
	return func(p *Position) { p.middle, p.hasMiddle = z, true }
}

// WithUpper sets the upper uncertainty bound.
func WithUpper(z float64) PositionOption {
	return func(p *Position) { p.upper, p.hasUpper = z, true }
}

// WithLower sets the lower uncertainty bound.
func WithLower(z float64) PositionOption {
	return func(p *Position) { p.lower, p.hasLower = z, true }
}

// WithX sets the x map coordinate. Requires WithY as well.
func WithX(x float64) PositionOption {
	return func(p *Position) { p.x, p.hasX = x, true }
}

// WithY sets the y map coordinate. Requires WithX as well.
func WithY(y float64) PositionOption {
	return func(p *Position) { p.y, p.hasY = y, true }
}

// WithUnits sets the distance units label. Default "m".
func WithUnits(units string) PositionOption {
	return func(p *Position) { p.units = units }
}

// WithMeta attaches arbitrary metadata to the Position. Entries with an
// empty key or value are dropped.
func WithMeta(meta map[string]string) PositionOption {
	return func(p *Position) {
		for k, v := range meta {
			if k == "" || v == "" {
				continue
			}
			if p.meta == nil {
				p.meta = make(map[string]string, len(meta))
			}
			p.meta[k] = v
		}
	}
}

// NewPosition builds a validated Position.
//
// Returns ErrMissingBounds unless a middle, or both an upper and a lower
// bound, were supplied; returns ErrUnpairedCoord if exactly one of x and y
// was supplied. Missing bounds default to the middle value.
// Complexity: O(1).
func NewPosition(opts ...PositionOption) (Position, error) {
	p := Position{units: "m"}
	for _, opt := range opts {
		opt(&p)
	}
	if !p.hasMiddle && !(p.hasUpper && p.hasLower) {
		return Position{}, ErrMissingBounds
	}
	if p.hasX != p.hasY {
		return Position{}, ErrUnpairedCoord
	}
	if !p.hasUpper {
		p.upper = p.middle
	}
	if !p.hasLower {
		p.lower = p.middle
	}
	p.hasUpper, p.hasLower = true, true
	return p, nil
}

// At is the explicit float-to-Position conversion used wherever a raw depth
// stands in for a top or base. The result has no uncertainty, metric units,
// and no metadata.
func At(z float64) Position {
	return Position{
		middle: z, hasMiddle: true,
		upper: z, hasUpper: true,
		lower: z, hasLower: true,
		units: "m",
	}
}

// Z returns the representative depth: the middle if one was given, else the
// mean of the upper and lower bounds.
func (p Position) Z() float64 {
	if p.hasMiddle {
		return p.middle
	}
	return (p.upper + p.lower) / 2
}

// Middle returns the middle value and whether one was explicitly set.
func (p Position) Middle() (float64, bool) { return p.middle, p.hasMiddle }

// Upper returns the upper uncertainty bound.
func (p Position) Upper() float64 { return p.upper }

// Lower returns the lower uncertainty bound.
func (p Position) Lower() float64 { return p.lower }

// Uncertainty returns the spread between the bounds, |upper - lower|.
func (p Position) Uncertainty() float64 { return math.Abs(p.upper - p.lower) }

// Span returns the (lower, upper) bounds as a pair.
func (p Position) Span() (lower, upper float64) { return p.lower, p.upper }

// XY returns the map coordinates and whether they were set.
func (p Position) XY() (x, y float64, ok bool) { return p.x, p.y, p.hasX && p.hasY }

// Units returns the distance units label.
func (p Position) Units() string { return p.units }

// Meta returns a copy of the metadata map, or nil if none was attached.
func (p Position) Meta() map[string]string {
	if p.meta == nil {
		return nil
	}
	cp := make(map[string]string, len(p.meta))
	for k, v := range p.meta {
		cp[k] = v
	}
	return cp
}

// Invert swaps the upper and lower bounds in place. Used when flipping a
// log between depth and elevation conventions.
func (p *Position) Invert() {
	p.upper, p.lower = p.lower, p.upper
}

// Copy returns a deep copy of the Position.
func (p Position) Copy() Position {
	cp := p
	cp.meta = p.Meta()
	return cp
}

// Equal reports whether two Positions sit at the same representative depth.
// Uncertainty bounds and metadata do not participate.
func (p Position) Equal(other Position) bool { return p.Z() == other.Z() }

// Less reports whether p sits at a numerically smaller depth than other.
func (p Position) Less(other Position) bool { return p.Z() < other.Z() }
