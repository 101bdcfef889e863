package strip

import (
	"errors"

	"github.com/agilescientific/striplog/core"
)

// Sentinel errors for striplog construction and mutation.
var (
	// ErrEmptyStriplog indicates an attempt to create (or reduce to) a
	// striplog with no intervals.
	ErrEmptyStriplog = errors.New("strip: cannot create an empty striplog")

	// ErrAmbiguousOrder indicates auto-detection failed: the data mixes
	// depth- and elevation-ordered intervals.
	ErrAmbiguousOrder = errors.New("strip: could not determine order from tops and bases")

	// ErrOrderViolation indicates the declared order is contradicted by the
	// interval data.
	ErrOrderViolation = errors.New("strip: declared order contradicted by data")

	// ErrPruneParams indicates Prune was called with zero or multiple
	// selection modes.
	ErrPruneParams = errors.New("strip: prune needs exactly one of limit, n, or percentile")

	// ErrAnnealMode indicates an unknown anneal mode.
	ErrAnnealMode = errors.New("strip: unknown anneal mode")

	// ErrCropExtent indicates a crop boundary outside the striplog.
	ErrCropExtent = errors.New("strip: crop extent must be inside the striplog")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("strip: values and basis must have the same length")
)

// AnnealMode selects how Anneal closes each gap between two intervals.
type AnnealMode int

const (
	// AnnealMiddle splits the gap in half and extends both neighbours.
	AnnealMiddle AnnealMode = iota

	// AnnealDown extends the upper neighbour's base down to the lower
	// neighbour's top.
	AnnealDown

	// AnnealUp extends the lower neighbour's top up to the upper
	// neighbour's base.
	AnnealUp
)

// PruneOptions selects which intervals Prune removes. Exactly one of
// Limit, N, or Percentile must be set (non-zero).
//
// Fields:
//   - Limit      — remove intervals thinner than this.
//   - N          — remove the n globally thinnest intervals.
//   - Percentile — remove the thinnest pct% (count = floor(len*pct/100)).
//   - KeepEnds   — never remove the first or last interval.
type PruneOptions struct {
	Limit      float64
	N          int
	Percentile float64
	KeepEnds   bool
}

// Option configures a Striplog at construction.
type Option func(*config)

type config struct {
	order  core.Order
	source string
}

// WithOrder declares the striplog's order instead of auto-detecting it.
// Construction fails with ErrOrderViolation if the data disagrees.
func WithOrder(o core.Order) Option {
	return func(c *config) { c.order = o }
}

// WithSource attaches a provenance label to the striplog.
func WithSource(source string) Option {
	return func(c *config) { c.source = source }
}

// UniqueEntry pairs a primary component with its cumulative thickness.
type UniqueEntry struct {
	Component core.Component
	Thickness float64
}
