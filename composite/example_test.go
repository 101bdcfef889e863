package composite_test

import (
	"fmt"

	"github.com/agilescientific/striplog/composite"
	"github.com/agilescientific/striplog/core"
	"github.com/agilescientific/striplog/strip"
)

// ExampleMerge flattens an overlapping log so the highest-priority unit
// shows at every depth.
func ExampleMerge() {
	unit := func(top, base, priority float64, name string) core.Interval {
		return core.Between(top, base,
			core.WithDescription(name),
			core.WithData(map[string]core.Value{"priority": core.Num(priority)}),
		)
	}

	s, _ := strip.New([]core.Interval{
		unit(0, 30, 1, "host rock"),
		unit(10, 20, 2, "intrusion"),
	})

	out, _ := composite.Merge(s, composite.Options{Attr: "priority"})
	for i := 0; i < out.Len(); i++ {
		iv := out.Interval(i)
		fmt.Printf("%v-%v %s\n", iv.Top().Z(), iv.Base().Z(), iv.Description())
	}

	// Output:
	// 0-10 host rock
	// 10-20 intrusion
	// 20-30 host rock
}
