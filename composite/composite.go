package composite

import (
	"fmt"
	"sort"

	"github.com/agilescientific/striplog/core"
	"github.com/agilescientific/striplog/strip"
)

// event is one top or base on the depth axis, tagged with the index of
// the interval it belongs to.
type event struct {
	top   bool
	depth float64
	idx   int
}

// Merge flattens the striplog into a non-overlapping one: wherever
// intervals overlap, the one whose attribute wins under opts shows, and
// lower-priority intervals resume where it ends. Intervals in the result
// keep the content of their source interval, with new plain-Position
// boundaries; zero-thickness pieces are discarded.
//
// The input is never mutated. Compositing an already non-overlapping
// striplog reproduces it.
// Complexity: O(n² log n) worst case for n intervals.
func Merge(s *strip.Striplog, opts Options) (*strip.Striplog, error) {
	if opts.Attr == "" {
		return nil, ErrNoAttr
	}
	if s.Order() == core.OrderNone {
		return nil, ErrUnordered
	}

	// Composite in depth space; flip elevation logs there and back.
	if s.Order() == core.OrderElevation {
		flipped := s.Copy()
		flipped.Invert()
		out, err := Merge(flipped, opts)
		if err != nil {
			return nil, err
		}
		out.Invert()
		return out, nil
	}

	list := s.Intervals()
	priority := make([]float64, len(list))
	for i, iv := range list {
		p, err := attrValue(iv, opts.Attr)
		if err != nil {
			return nil, err
		}
		priority[i] = p
	}

	table := sweep(list, priority, opts.Reverse)

	out := make([]core.Interval, 0, len(table)/2)
	for i := 0; i+1 < len(table); i += 2 {
		top, base := table[i], table[i+1]
		if top.depth == base.depth {
			continue
		}
		iv := list[top.idx].Copy()
		iv.SetTop(core.At(top.depth))
		iv.SetBase(core.At(base.depth))
		out = append(out, iv)
	}
	return strip.New(out, strip.WithOrder(core.OrderDepth), strip.WithSource(s.Source()))
}

// sweep walks the tops and bases in depth order, maintaining a stack of
// open intervals sorted by priority, and emits alternating top/base
// events describing the composited column. The returned slice pairs up:
// even entries are tops, odd entries the matching bases.
func sweep(list []core.Interval, priority []float64, reverse bool) []event {
	events := make([]event, 0, 2*len(list))
	for i, iv := range list {
		events = append(events, event{top: true, depth: iv.Top().Z(), idx: i})
		events = append(events, event{top: false, depth: iv.Base().Z(), idx: i})
	}
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].depth < events[b].depth
	})

	// wins reports whether priority a beats (or ties) b.
	wins := func(a, b float64) bool {
		if reverse {
			return a <= b
		}
		return a >= b
	}

	var merged []event
	var stack []int
	for _, ev := range events {
		merge := true
		if len(stack) > 0 {
			merge = wins(priority[ev.idx], priority[stack[len(stack)-1]])
		}

		if ev.top {
			if merge {
				if len(stack) > 0 {
					// Close the unit that was showing.
					merged = append(merged, event{depth: ev.depth, idx: stack[len(stack)-1]})
				}
				merged = append(merged, ev)
			}
			stack = append(stack, ev.idx)
			sort.SliceStable(stack, func(a, b int) bool {
				if reverse {
					return priority[stack[a]] > priority[stack[b]]
				}
				return priority[stack[a]] < priority[stack[b]]
			})
		} else {
			closedShowing := false
			if ev.idx == stack[len(stack)-1] {
				merged = append(merged, ev)
				closedShowing = true
			}
			for i, idx := range stack {
				if idx == ev.idx {
					stack = append(stack[:i], stack[i+1:]...)
					break
				}
			}
			// The next-best unit resumes at this depth.
			if len(stack) > 0 && closedShowing {
				merged = append(merged, event{top: true, depth: ev.depth, idx: stack[len(stack)-1]})
			}
		}
	}
	return merged
}

// attrValue resolves the priority attribute on one interval: the builtin
// "thickness", then the interval's data map, then the primary component.
func attrValue(iv core.Interval, attr string) (float64, error) {
	if attr == "thickness" {
		return iv.Thickness(), nil
	}
	if v, ok := iv.Data()[attr]; ok {
		if v.Kind() != core.KindNumber {
			return 0, fmt.Errorf("composite: attribute %q: %w", attr, ErrAttrNotNumeric)
		}
		return v.Float(), nil
	}
	if p, ok := iv.Primary(); ok {
		if v, ok := p.Get(attr); ok {
			if v.Kind() != core.KindNumber {
				return 0, fmt.Errorf("composite: attribute %q: %w", attr, ErrAttrNotNumeric)
			}
			return v.Float(), nil
		}
	}
	return 0, fmt.Errorf("composite: attribute %q: %w", attr, ErrAttrNotFound)
}
