package rasterize

import (
	"math"

	"github.com/agilescientific/striplog/core"
	"github.com/agilescientific/striplog/strip"
)

// ToLog samples the striplog onto a fixed-step basis. The basis runs
// ascending from Start to Stop (defaulting to the striplog's extent);
// each sample inside an interval gets that interval's key and every
// other sample gets Undefined. Intervals are filled closed on both
// boundary indices, so at an exact contact the later interval in
// striplog order wins the shared sample.
// Complexity: O(n·m) for n intervals and m samples.
func ToLog(s *strip.Striplog, opts Options) (*Log, error) {
	if opts.Step <= 0 {
		return nil, ErrStep
	}
	if s.Order() == core.OrderNone {
		return nil, ErrUnordered
	}

	start, stop := opts.Start, opts.Stop
	if math.IsNaN(start) {
		start = s.Start().Z()
	}
	if math.IsNaN(stop) {
		stop = s.Stop().Z()
	}
	if start > stop {
		start, stop = stop, start
	}

	pts := int(math.Ceil((stop-start)/opts.Step)) + 1
	basis := make([]float64, pts)
	for i := range basis {
		basis[i] = start + float64(i)*opts.Step
	}

	values := make([]float64, pts)
	for i := range values {
		values[i] = opts.Undefined
	}

	table := opts.Table
	if table == nil && opts.Field == "" {
		table = s.Components()
	}

	for _, iv := range s.Intervals() {
		key, ok := intervalKey(iv, table, opts)
		if !ok {
			continue
		}

		lo := math.Min(iv.Top().Z(), iv.Base().Z())
		hi := math.Max(iv.Top().Z(), iv.Base().Z())
		loIx := int(math.Ceil((math.Max(start, lo) - start) / opts.Step))
		hiIx := int(math.Ceil((math.Min(stop, hi) - start) / opts.Step))

		for i := loIx; i <= hiIx && i < pts; i++ {
			if i >= 0 {
				values[i] = key
			}
		}
	}

	return &Log{Values: values, Basis: basis, Table: table}, nil
}

// intervalKey resolves one interval's log value: the Field entry from its
// data map, or its primary's 1-based index in the table. A miss means the
// interval contributes nothing.
func intervalKey(iv core.Interval, table []core.Component, opts Options) (float64, bool) {
	if opts.Field != "" {
		v, ok := iv.Data()[opts.Field]
		if !ok || v.Kind() != core.KindNumber {
			return 0, false
		}
		return v.Float(), true
	}
	p, ok := iv.Primary()
	if !ok {
		return 0, false
	}
	for i, c := range table {
		if c.Equal(p) {
			return float64(i + 1), true
		}
	}
	return 0, false
}

// FromLog run-length decodes a sampled log back into a striplog. Each
// maximal run of equal values becomes one interval from the run's first
// basis position to the next run's first (the last run ends at the final
// basis position); runs of opts.Undefined become gaps. Keys index
// opts.Table 1-based, or in Field mode land in each interval's data map
// under opts.Field.
//
// Returns ErrLengthMismatch for unpaired slices and ErrTableIndex for a
// key outside the table.
func FromLog(values, basis []float64, opts Options) (*strip.Striplog, error) {
	if len(values) != len(basis) {
		return nil, ErrLengthMismatch
	}

	same := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return a == b
	}

	var intervals []core.Interval
	for i := 0; i < len(values); {
		j := i + 1
		for j < len(values) && same(values[j], values[i]) {
			j++
		}

		if !same(values[i], opts.Undefined) {
			top := basis[i]
			base := basis[len(basis)-1]
			if j < len(basis) {
				base = basis[j]
			}

			var ivOpts []core.IntervalOption
			if opts.Field != "" {
				ivOpts = append(ivOpts, core.WithData(map[string]core.Value{
					opts.Field: core.Num(values[i]),
				}))
			} else {
				ix := int(values[i]) - 1
				if ix < 0 || ix >= len(opts.Table) {
					return nil, ErrTableIndex
				}
				ivOpts = append(ivOpts, core.WithComponents(opts.Table[ix]))
			}
			intervals = append(intervals, core.Between(top, base, ivOpts...))
		}
		i = j
	}
	return strip.New(intervals, strip.WithSource("log"))
}
