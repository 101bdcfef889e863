package rasterize_test

import (
	"fmt"

	"github.com/agilescientific/striplog/core"
	"github.com/agilescientific/striplog/rasterize"
	"github.com/agilescientific/striplog/strip"
)

// ExampleToLog samples a two-unit striplog at 2 m steps.
func ExampleToLog() {
	sand := core.NewComponent(map[string]core.Value{"lithology": core.Str("sandstone")})
	shale := core.NewComponent(map[string]core.Value{"lithology": core.Str("shale")})

	s, _ := strip.New([]core.Interval{
		core.Between(0, 6, core.WithComponents(sand)),
		core.Between(6, 10, core.WithComponents(shale)),
	})

	opts := rasterize.DefaultOptions()
	opts.Step = 2
	log, _ := rasterize.ToLog(s, opts)

	fmt.Println(log.Values)
	fmt.Println(log.Table[0].Summary(), "/", log.Table[1].Summary())

	// Output:
	// [1 1 1 2 2 2]
	// Sandstone / Shale
}
