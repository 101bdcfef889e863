// Package rasterize converts between striplogs and fixed-step sampled
// logs, the boundary where interval data meets curve data.
//
// 📈 Two directions:
//
//	ToLog samples a striplog onto a regular depth basis: every sample
//	inside an interval gets that interval's key (its 1-based index into a
//	deduplicated component table, or a raw data-map value in Field mode),
//	and everything else gets the Undefined sentinel, which may be NaN.
//	Boundary samples are filled closed on both ends, so at an exact
//	contact the deeper interval wins the shared sample.
//
//	FromLog is the inverse: run-length decode a sampled log back into a
//	striplog, looking components up in the table. Runs of the Undefined
//	sentinel become gaps.
//
// ⚙️ Usage:
//
//	log, err := rasterize.ToLog(s, rasterize.DefaultOptions())
//	back, err := rasterize.FromLog(log.Values, log.Basis, rasterize.Options{
//	    Table: log.Table,
//	})
//
// A round trip through ToLog then FromLog reproduces the striplog's
// geometry to within one step.
package rasterize
