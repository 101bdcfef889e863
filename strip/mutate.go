package strip

import (
	"math"

	"github.com/agilescientific/striplog/core"
)

// MergeOverlaps merges overlapping neighbours in place by repeatedly
// replacing the first overlapping pair with its three-way partition
// (core.Interval.Merge with blending) until no overlaps remain. The
// sequence is rebuilt from scratch on every pass, so no index bookkeeping
// can go stale. On error the striplog is unchanged.
// Complexity: O(n·k) for k overlaps.
func (s *Striplog) MergeOverlaps() error {
	list := copyIntervals(s.list)
	for {
		idx, _ := consecutiveHits(list, s.order, true)
		if len(idx) == 0 {
			break
		}
		i := idx[0]
		pieces, err := list[i].Merge(list[i+1], true)
		if err != nil {
			return err
		}
		rebuilt := make([]core.Interval, 0, len(list)+len(pieces)-2)
		rebuilt = append(rebuilt, list[:i]...)
		rebuilt = append(rebuilt, pieces...)
		rebuilt = append(rebuilt, list[i+2:]...)
		sortIntervals(rebuilt, s.order)
		list = rebuilt
	}
	s.list = list
	return nil
}

// Anneal closes every gap in place by growing the bounding intervals:
// AnnealMiddle meets in the middle, AnnealDown extends the upper
// neighbour's base, AnnealUp extends the lower neighbour's top. The moved
// boundary becomes a plain Position: uncertainty and metadata there are
// destroyed (intentional information loss). On error the striplog is
// unchanged.
func (s *Striplog) Anneal(mode AnnealMode) error {
	switch mode {
	case AnnealMiddle, AnnealDown, AnnealUp:
	default:
		return ErrAnnealMode
	}
	if s.order == core.OrderNone {
		return nil
	}

	list := copyIntervals(s.list)
	idx, _ := consecutiveHits(list, s.order, false)
	for _, i := range idx {
		cb := list[i].Base().Z()
		nt := list[i+1].Top().Z()
		switch mode {
		case AnnealMiddle:
			m := (cb + nt) / 2
			list[i].SetBase(core.At(m))
			list[i+1].SetTop(core.At(m))
		case AnnealDown:
			list[i].SetBase(core.At(nt))
		case AnnealUp:
			list[i+1].SetTop(core.At(cb))
		}
	}
	s.list = list
	return nil
}

// Prune removes intervals in place according to exactly one selection
// mode in opts: thinner than Limit, the N thinnest, or the thinnest
// Percentile. With KeepEnds the first and last intervals survive even if
// selected. Pruning away every interval is ErrEmptyStriplog; on any error
// the striplog is unchanged.
func (s *Striplog) Prune(opts PruneOptions) error {
	modes := 0
	if opts.Limit > 0 {
		modes++
	}
	if opts.N > 0 {
		modes++
	}
	if opts.Percentile > 0 {
		modes++
	}
	if modes != 1 {
		return ErrPruneParams
	}

	doomed := make(map[int]bool)
	switch {
	case opts.Limit > 0:
		for i, iv := range s.list {
			if iv.Thickness() < opts.Limit {
				doomed[i] = true
			}
		}
	case opts.N > 0:
		for _, i := range s.Thinnest(opts.N) {
			doomed[i] = true
		}
	default:
		n := int(math.Floor(float64(len(s.list)) * opts.Percentile / 100))
		for _, i := range s.Thinnest(n) {
			doomed[i] = true
		}
	}

	if opts.KeepEnds {
		delete(doomed, 0)
		delete(doomed, len(s.list)-1)
	}

	kept := make([]core.Interval, 0, len(s.list)-len(doomed))
	for i, iv := range s.list {
		if !doomed[i] {
			kept = append(kept, iv.Copy())
		}
	}
	if len(kept) == 0 {
		return ErrEmptyStriplog
	}
	s.list = kept
	return nil
}

// Crop trims the striplog in place to the depth range between z1 and z2,
// both of which must be spanned by some interval (ErrCropExtent
// otherwise). Either boundary may be NaN to keep the existing start or
// stop. End intervals are split at the boundaries; the cut positions are
// plain Positions with no metadata. On error the striplog is unchanged.
func (s *Striplog) Crop(z1, z2 float64) error {
	if math.IsNaN(z1) {
		z1 = s.Start().Z()
	}
	if math.IsNaN(z2) {
		z2 = s.Stop().Z()
	}

	// The boundary nearest list[0] is the smaller z for depth order and
	// the larger z for elevation.
	near, far := math.Min(z1, z2), math.Max(z1, z2)
	if s.order == core.OrderElevation {
		near, far = far, near
	}

	nearIx, ok := s.IndexAt(near)
	if !ok {
		return ErrCropExtent
	}
	farIx, ok := s.IndexAt(far)
	if !ok {
		return ErrCropExtent
	}

	if nearIx == farIx {
		_, tail, err := s.list[nearIx].SplitAt(near)
		if err != nil {
			return err
		}
		head, _, err := tail.SplitAt(far)
		if err != nil {
			return err
		}
		s.list = []core.Interval{head}
		return nil
	}

	_, first, err := s.list[nearIx].SplitAt(near)
	if err != nil {
		return err
	}
	last, _, err := s.list[farIx].SplitAt(far)
	if err != nil {
		return err
	}

	list := make([]core.Interval, 0, farIx-nearIx+1)
	list = append(list, first)
	list = append(list, copyIntervals(s.list[nearIx+1:farIx])...)
	list = append(list, last)
	s.list = list
	return nil
}

// Invert flips the striplog in place between depth and elevation
// conventions: every interval inverts and the sequence re-sorts. A
// point-only striplog stays OrderNone.
func (s *Striplog) Invert() {
	list := copyIntervals(s.list)
	for i := range list {
		list[i].Invert()
	}
	switch s.order {
	case core.OrderDepth:
		s.order = core.OrderElevation
	case core.OrderElevation:
		s.order = core.OrderDepth
	}
	sortIntervals(list, s.order)
	s.list = list
}

// Shift returns a copy with every boundary moved by delta (negative is
// toward the datum). The moved boundaries are plain Positions.
func (s *Striplog) Shift(delta float64) *Striplog {
	out := s.Copy()
	for i := range out.list {
		out.list[i].SetTop(core.At(out.list[i].Top().Z() + delta))
		out.list[i].SetBase(core.At(out.list[i].Base().Z() + delta))
	}
	return out
}

// ShiftTo returns a copy shifted so that the striplog starts at start.
func (s *Striplog) ShiftTo(start float64) *Striplog {
	return s.Shift(start - s.Start().Z())
}
