package strip

import "github.com/agilescientific/striplog/core"

// consecutiveHits scans adjacent pairs for gaps or overlaps, comparing the
// order-appropriate shared boundary: the upper interval's base against the
// lower interval's top. It returns the index of the first interval of each
// hit pair plus a synthetic zero-content interval spanning the gap or
// overlap region.
func consecutiveHits(list []core.Interval, order core.Order, overlap bool) (idx []int, synth []core.Interval) {
	if len(list) < 2 || order == core.OrderNone {
		return nil, nil
	}
	for i := 0; i < len(list)-1; i++ {
		cur, next := list[i], list[i+1]
		cb, nt := cur.Base().Z(), next.Top().Z()

		// Overlap: the upper interval reaches past the lower one's top.
		// Gap: it stops short. Direction flips with order.
		past := cb > nt
		if order == core.OrderElevation {
			past = cb < nt
		}

		if overlap && past {
			idx = append(idx, i)
			synth = append(synth, core.NewInterval(next.Top(), cur.Base()))
		} else if !overlap && !past && cb != nt {
			idx = append(idx, i)
			synth = append(synth, core.NewInterval(cur.Base(), next.Top()))
		}
	}
	return idx, synth
}

// FindGaps returns a striplog of synthetic intervals covering every gap
// between consecutive intervals, or nil when there are none. The nil
// return is the "nothing found" signal, distinct from any error: a
// striplog can never be empty.
// Complexity: O(n).
func (s *Striplog) FindGaps() *Striplog {
	_, synth := consecutiveHits(s.list, s.order, false)
	return wrapScan(synth, s.order)
}

// FindOverlaps returns a striplog of synthetic intervals covering every
// overlap between consecutive intervals, or nil when there are none.
// Complexity: O(n).
func (s *Striplog) FindOverlaps() *Striplog {
	_, synth := consecutiveHits(s.list, s.order, true)
	return wrapScan(synth, s.order)
}

// wrapScan wraps scan results in a striplog, or nil for no hits.
func wrapScan(synth []core.Interval, order core.Order) *Striplog {
	if len(synth) == 0 {
		return nil
	}
	out, err := New(synth, WithOrder(order))
	if err != nil {
		// Unreachable: synthetic intervals follow the scan order.
		return nil
	}
	return out
}
