// Package strip implements the Striplog container: an ordered, immutable
// sequence of intervals on a single depth or elevation axis, with scans,
// healing operations, and set algebra over whole logs.
//
// 🗒️ What is a striplog?
//
//	A striplog is one well's worth of intervals, sorted by top (ascending
//	for depth, descending for elevation) and validated to share a single
//	order. Construction either auto-detects the order from the data or
//	checks a declared one; mixed data fails with ErrAmbiguousOrder or
//	ErrOrderViolation. A striplog is never empty.
//
// ✨ Key features:
//   - FindGaps / FindOverlaps — single-pass scans returning a new striplog
//     of synthetic intervals, or nil when the log is already clean
//   - MergeOverlaps, Anneal, Prune, Crop — healing operations that build
//     a fresh interval list and swap it in atomically, so a failed call
//     leaves the striplog exactly as it was
//   - Union, Intersect, MergeNeighbours, Fill — set algebra against other
//     striplogs and components
//   - ReadAt, Find, Thickest, Thinnest, Unique, Extract — queries and
//     summaries over the log
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/agilescientific/striplog/core"
//	    "github.com/agilescientific/striplog/strip"
//	)
//
//	s, err := strip.New([]core.Interval{
//	    core.Between(10, 30),
//	    core.Between(35, 60),
//	})
//	if gaps := s.FindGaps(); gaps != nil {
//	    _ = s.Anneal(strip.AnnealMiddle)
//	}
//
// Striplog methods that return a striplog always return a new value; the
// receiver is shared only through explicit mutators. The package carries
// no locking.
package strip
