package rasterize

import (
	"errors"
	"math"

	"github.com/agilescientific/striplog/core"
)

// Sentinel errors for log conversion.
var (
	// ErrStep indicates a zero or negative step size.
	ErrStep = errors.New("rasterize: step must be positive")

	// ErrLengthMismatch indicates values and basis slices of different
	// lengths.
	ErrLengthMismatch = errors.New("rasterize: values and basis must have the same length")

	// ErrTableIndex indicates a log value pointing outside the component
	// table.
	ErrTableIndex = errors.New("rasterize: log value outside the component table")

	// ErrUnordered indicates a point-sample striplog, which has no
	// geometry to sample.
	ErrUnordered = errors.New("rasterize: striplog has no order")
)

// Options controls both conversion directions.
//
// Fields:
//   - Step      — sample spacing (ToLog). Must be positive.
//   - Start     — first sample position; NaN means the striplog's start.
//   - Stop      — last sample position; NaN means the striplog's stop.
//   - Field     — sample this data-map key's numeric value instead of
//     component-table indices. Intervals without the key read Undefined.
//   - Undefined — the sentinel for unsampled positions; may be NaN.
//   - Table     — a preset component lookup table. ToLog builds one from
//     the striplog's distinct primaries when nil; FromLog requires one
//     unless Field is set.
type Options struct {
	Step      float64
	Start     float64
	Stop      float64
	Field     string
	Undefined float64
	Table     []core.Component
}

// DefaultOptions samples one-unit steps across the whole striplog, with
// zero as the undefined sentinel.
func DefaultOptions() Options {
	return Options{Step: 1, Start: math.NaN(), Stop: math.NaN()}
}

// Log is a sampled rendering of a striplog: Values[i] is the key at
// Basis[i]. Keys are 1-based indices into Table, except in Field mode
// where they are raw data values and Table is nil.
type Log struct {
	Values []float64
	Basis  []float64
	Table  []core.Component
}
