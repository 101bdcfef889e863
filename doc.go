// Package striplog is an in-memory toolkit for one-dimensional geological
// columns — sequences of lithologic intervals ordered by depth or
// elevation, with the algebra to clean, combine, and sample them.
//
// 🪨 What is striplog?
//
//	A library for interval data on a single axis:
//		• Core primitives: Position, Component, Interval & their pairwise algebra
//		• Striplog container: ordering invariants, gap/overlap scans
//		• Healing: merge overlaps, anneal gaps, prune slivers, crop
//		• Compositing: priority-based flattening of overlapping logs
//		• Rasterizing: striplog ⇄ fixed-step sampled log
//
// ✨ Why choose striplog?
//
//   - Typed failures – every precondition violation is a sentinel error
//   - Value semantics – operations never mutate their operands; copies are deep
//   - Pure Go – no cgo, a single test-only dependency
//   - Order-aware – depth and elevation conventions handled uniformly
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — Position, Component, Value, Interval & the pairwise algebra
//	strip/     — the Striplog container: scans, healing, set operations
//	composite/ — the priority compositing sweep
//	rasterize/ — striplog ⇄ fixed-step log conversion
//
// Quick ASCII example:
//
//	depth ─▶  10 ┌───────────┐
//	             │ sandstone │
//	          30 ├───────────┤
//	             │ shale     │
//	          60 └───────────┘
//
//	s, err := strip.New([]core.Interval{
//	    core.Between(10, 30, core.WithComponents(sand)),
//	    core.Between(30, 60, core.WithComponents(shale)),
//	})
//
// Start with package core for the interval algebra, or package strip for
// whole-column operations.
package striplog
