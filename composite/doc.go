// Package composite flattens an overlapping striplog into a
// non-overlapping one by priority: wherever intervals overlap, the one
// with the winning attribute value shows at surface, and lower-priority
// intervals resume when it ends.
//
// 🥞 How it works:
//
//	Every top and base becomes an event on the depth axis. A single sweep
//	walks the events in order, keeping a stack of the intervals currently
//	open, sorted by the priority attribute. Whenever the winner changes,
//	the current unit is closed and the new winner opened. Pairing up the
//	emitted tops and bases yields the composited striplog; zero-thickness
//	pieces are discarded.
//
// The priority attribute is resolved per interval: the builtin
// "thickness", then the interval's data map, then the primary component.
// It must be numeric. By default the larger value wins; Reverse makes the
// smaller value win.
//
// ⚙️ Usage:
//
//	out, err := composite.Merge(s, composite.Options{Attr: "priority"})
//
// Elevation-ordered striplogs are handled by compositing in depth space
// and flipping back; point-sample striplogs cannot be composited.
package composite
