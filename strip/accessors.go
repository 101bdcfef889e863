package strip

import (
	"regexp"
	"sort"

	"github.com/agilescientific/striplog/core"
)

// Start returns the Position closest to the datum: the shallowest top for
// depth order, the lowest base for elevation.
func (s *Striplog) Start() core.Position {
	best := s.list[0].Top()
	if s.order == core.OrderElevation {
		best = s.list[0].Base()
		for _, iv := range s.list[1:] {
			if b := iv.Base(); b.Less(best) {
				best = b
			}
		}
		return best
	}
	for _, iv := range s.list[1:] {
		if t := iv.Top(); t.Less(best) {
			best = t
		}
	}
	return best
}

// Stop returns the Position furthest from the datum: the deepest base for
// depth order, the highest top for elevation.
func (s *Striplog) Stop() core.Position {
	best := s.list[0].Base()
	if s.order == core.OrderElevation {
		best = s.list[0].Top()
		for _, iv := range s.list[1:] {
			if t := iv.Top(); best.Less(t) {
				best = t
			}
		}
		return best
	}
	for _, iv := range s.list[1:] {
		if b := iv.Base(); best.Less(b) {
			best = b
		}
	}
	return best
}

// Cum returns the cumulative thickness of all intervals.
func (s *Striplog) Cum() float64 {
	total := 0.0
	for _, iv := range s.list {
		total += iv.Thickness()
	}
	return total
}

// Mean returns the mean interval thickness.
func (s *Striplog) Mean() float64 {
	return s.Cum() / float64(len(s.list))
}

// Unique summarizes the striplog as primary-component → cumulative
// thickness, sorted by descending thickness. Intervals without components
// accumulate under the empty Component.
// Complexity: O(n·k) for k distinct primaries.
func (s *Striplog) Unique() []UniqueEntry {
	entries := make([]UniqueEntry, 0, 4)
	for _, iv := range s.list {
		p, _ := iv.Primary()
		found := false
		for i := range entries {
			if entries[i].Component.Equal(p) {
				entries[i].Thickness += iv.Thickness()
				found = true
				break
			}
		}
		if !found {
			entries = append(entries, UniqueEntry{Component: p, Thickness: iv.Thickness()})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Thickness > entries[j].Thickness
	})
	return entries
}

// Components returns the distinct non-empty primary components, ordered by
// descending cumulative thickness.
func (s *Striplog) Components() []core.Component {
	out := make([]core.Component, 0, 4)
	for _, e := range s.Unique() {
		if !e.Component.Empty() {
			out = append(out, e.Component)
		}
	}
	return out
}

// IndexAt returns the index of the first interval spanning depth d, and
// whether one exists.
func (s *Striplog) IndexAt(d float64) (int, bool) {
	for i, iv := range s.list {
		if iv.Spans(d) {
			return i, true
		}
	}
	return 0, false
}

// ReadAt returns the first interval spanning depth d, and whether one
// exists.
func (s *Striplog) ReadAt(d float64) (core.Interval, bool) {
	i, ok := s.IndexAt(d)
	if !ok {
		return core.Interval{}, false
	}
	return s.list[i].Copy(), true
}

// Find returns a new striplog of the intervals whose description (or,
// when empty, primary-component summary) matches the pattern, case
// insensitively. Returns nil when nothing matches, and an error only for
// an invalid pattern.
func (s *Striplog) Find(pattern string) (*Striplog, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	hits := make([]core.Interval, 0, 4)
	for _, iv := range s.list {
		text := iv.Description()
		if text == "" {
			if p, ok := iv.Primary(); ok {
				text = p.Summary()
			}
		}
		if text != "" && re.MatchString(text) {
			hits = append(hits, iv.Copy())
		}
	}
	if len(hits) == 0 {
		return nil, nil
	}
	return New(hits, WithOrder(s.order), WithSource(s.source))
}

// FindComponent returns a new striplog of the intervals whose component
// list contains a value-equal match. Returns nil when nothing matches.
func (s *Striplog) FindComponent(c core.Component) *Striplog {
	hits := make([]core.Interval, 0, 4)
	for _, iv := range s.list {
		for _, have := range iv.Components() {
			if have.Equal(c) {
				hits = append(hits, iv.Copy())
				break
			}
		}
	}
	if len(hits) == 0 {
		return nil
	}
	out, err := New(hits, WithOrder(s.order), WithSource(s.source))
	if err != nil {
		return nil
	}
	return out
}

// Thickest returns the indices of the n thickest intervals, thickest
// first. n is clamped to the striplog length.
func (s *Striplog) Thickest(n int) []int {
	idx := s.byThickness()
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, idx[len(idx)-1-i])
	}
	return out
}

// Thinnest returns the indices of the n thinnest intervals, thinnest
// first. n is clamped to the striplog length.
func (s *Striplog) Thinnest(n int) []int {
	idx := s.byThickness()
	if n > len(idx) {
		n = len(idx)
	}
	return idx[:n]
}

// byThickness returns interval indices sorted ascending by thickness,
// ties broken by position.
func (s *Striplog) byThickness() []int {
	idx := make([]int, len(s.list))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.list[idx[a]].Thickness() < s.list[idx[b]].Thickness()
	})
	return idx
}
