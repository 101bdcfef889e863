package strip

import "github.com/agilescientific/striplog/core"

// MergeNeighbours returns a new striplog in which touching neighbours with
// matching components are unioned. With strict the whole component list
// must match element-wise; otherwise the primary component is enough.
// Non-matching neighbours pass through unchanged.
// Complexity: O(n).
func (s *Striplog) MergeNeighbours(strict bool) (*Striplog, error) {
	result := []core.Interval{s.list[0].Copy()}
	for _, lower := range s.list[1:] {
		last := result[len(result)-1]

		similar := false
		if strict {
			similar = componentListsEqual(last.Components(), lower.Components())
		} else {
			lp, _ := last.Primary()
			op, _ := lower.Primary()
			similar = lp.Equal(op)
		}

		if similar && last.Touches(lower) {
			union, err := last.Union(lower, true)
			if err != nil {
				return nil, err
			}
			result[len(result)-1] = union
		} else {
			result = append(result, lower.Copy())
		}
	}
	return New(result, WithOrder(s.order), WithSource(s.source))
}

// componentListsEqual compares two component lists element-wise.
func componentListsEqual(a, b []core.Component) bool {
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

// Union returns a new striplog where each of s's intervals has been
// unioned with every interval of other it overlaps.
func (s *Striplog) Union(other *Striplog) (*Striplog, error) {
	result := make([]core.Interval, 0, len(s.list))
	for _, iv := range s.list {
		acc := iv.Copy()
		for _, jv := range other.list {
			if acc.AnyOverlaps(jv) {
				u, err := acc.Union(jv, true)
				if err != nil {
					return nil, err
				}
				acc = u
			}
		}
		result = append(result, acc)
	}
	return New(result, WithSource(s.source))
}

// Intersect returns a new striplog of every pairwise overlap between s
// and other. No overlaps at all is ErrEmptyStriplog.
func (s *Striplog) Intersect(other *Striplog) (*Striplog, error) {
	result := make([]core.Interval, 0, len(s.list))
	for _, iv := range s.list {
		for _, jv := range other.list {
			if !iv.AnyOverlaps(jv) {
				continue
			}
			x, err := iv.Intersect(jv, true)
			if err != nil {
				return nil, err
			}
			result = append(result, x)
		}
	}
	return New(result, WithSource(s.source))
}

// Fill returns a new striplog with every gap turned into a real interval
// carrying the given component. Without gaps, a plain copy.
func (s *Striplog) Fill(c core.Component) (*Striplog, error) {
	gaps := s.FindGaps()
	if gaps == nil {
		return s.Copy(), nil
	}
	filler := gaps.Intervals()
	for i := range filler {
		filler[i].SetComponents([]core.Component{c})
	}
	return New(append(s.Intervals(), filler...), WithOrder(s.order), WithSource(s.source))
}

// Extract summarizes a sampled log into the striplog: each interval's
// data map gains key = fn(samples falling inside it). A nil fn means the
// arithmetic mean. Samples outside every interval are ignored; intervals
// without samples are left untouched. Returns a new striplog;
// ErrLengthMismatch if values and basis differ in length.
func (s *Striplog) Extract(values, basis []float64, key string, fn func([]float64) core.Value) (*Striplog, error) {
	if len(values) != len(basis) {
		return nil, ErrLengthMismatch
	}
	if fn == nil {
		fn = meanValue
	}

	buckets := make(map[int][]float64)
	for i, z := range basis {
		if ix, ok := s.IndexAt(z); ok {
			buckets[ix] = append(buckets[ix], values[i])
		}
	}

	out := s.Copy()
	for ix, samples := range buckets {
		out.list[ix].PutData(key, fn(samples))
	}
	return out, nil
}

// meanValue is the default Extract reducer.
func meanValue(samples []float64) core.Value {
	total := 0.0
	for _, v := range samples {
		total += v
	}
	return core.Num(total / float64(len(samples)))
}
