// Package core models positions, components, and intervals on a single
// depth-or-elevation axis, and implements the pairwise interval algebra
// that container-level operations are built from.
//
// 🪨 What is an interval?
//
//	A lithologic or stratigraphic interval is a labelled span between two
//	Positions (top and base), or a degenerate point. It carries an ordered
//	list of Components (the first is the primary), a free-text description,
//	and a generic data map of closed-sum Values.
//
// ✨ Key features:
//   - Position with optional uncertainty bounds (upper/lower) and metadata
//   - direction-aware relationship classification:
//     contains / containedby / partially / touches / none
//   - split, intersect, merge, union, and difference with optional blending
//     of components, descriptions, and data
//   - strict, typed preconditions: every misuse surfaces as a sentinel
//     error (ErrNoOverlap, ErrNotAdjacent, ErrOutsideSpan, ...)
//
// ⚙️ Usage:
//
//	import "github.com/agilescientific/striplog/core"
//
//	sand := core.NewComponent(map[string]core.Value{
//	    "lithology": core.Str("sandstone"),
//	})
//	a := core.Between(10, 30, core.WithComponents(sand))
//	b := core.Between(20, 40)
//
//	pieces, err := a.Merge(b, true) // three non-overlapping pieces
//
// All operations are pure: they never mutate their operands, and copies are
// deep. The package is synchronous and carries no locking; see the strip
// package for container-level invariants.
package core
