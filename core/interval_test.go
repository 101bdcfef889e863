package core_test

import (
	"testing"

	"github.com/agilescientific/striplog/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sand() core.Component {
	return core.NewComponent(map[string]core.Value{"lithology": core.Str("sandstone")})
}

func shale() core.Component {
	return core.NewComponent(map[string]core.Value{"lithology": core.Str("shale")})
}

// TestInterval_DerivedProperties covers thickness, middle, kind, and order.
func TestInterval_DerivedProperties(t *testing.T) {
	iv := core.Between(10, 30)
	assert.Equal(t, 20.0, iv.Thickness())
	assert.Equal(t, 20.0, iv.Middle())
	assert.Equal(t, core.KindInterval, iv.Kind())
	assert.Equal(t, core.OrderDepth, iv.Order())

	up := core.Between(150, 120)
	assert.Equal(t, 30.0, up.Thickness())
	assert.Equal(t, core.OrderElevation, up.Order())

	pt := core.PointAt(core.At(42))
	assert.Equal(t, core.KindPoint, pt.Kind())
	assert.Equal(t, 0.0, pt.Thickness())
}

// TestInterval_ThicknessBounds checks the uncertainty-aware extremes.
func TestInterval_ThicknessBounds(t *testing.T) {
	top, err := core.NewPosition(core.WithMiddle(10), core.WithUpper(8), core.WithLower(12))
	require.NoError(t, err)
	base, err := core.NewPosition(core.WithMiddle(30), core.WithUpper(28), core.WithLower(32))
	require.NoError(t, err)

	iv := core.NewInterval(top, base)
	assert.Equal(t, 20.0, iv.Thickness())
	assert.Equal(t, 16.0, iv.MinThickness(), "|base.upper - top.lower|")
	assert.Equal(t, 24.0, iv.MaxThickness(), "|base.lower - top.upper|")
}

// TestInterval_PrimaryAndComponents verifies component list access.
func TestInterval_PrimaryAndComponents(t *testing.T) {
	iv := core.Between(0, 10, core.WithComponents(sand(), shale()))
	p, ok := iv.Primary()
	require.True(t, ok)
	assert.True(t, p.Equal(sand()))
	assert.Len(t, iv.Components(), 2)

	empty := core.Between(0, 10)
	_, ok = empty.Primary()
	assert.False(t, ok)
}

// TestInterval_Summary pins the "<thickness> <units> of <content>" shape.
func TestInterval_Summary(t *testing.T) {
	iv := core.Between(10, 30, core.WithComponents(sand()))
	assert.Equal(t, "20.00 m of Sandstone", iv.Summary())

	desc := core.Between(10, 15, core.WithDescription("grey marl"))
	assert.Equal(t, "5.00 m of grey marl", desc.Summary(), "description fallback")

	assert.Equal(t, "", core.Between(0, 1).Summary())
}

// TestInterval_Invert verifies the depth/elevation flip.
func TestInterval_Invert(t *testing.T) {
	iv := core.Between(10, 30)
	require.Equal(t, core.OrderDepth, iv.Order())

	iv.Invert()
	assert.Equal(t, core.OrderElevation, iv.Order())
	assert.Equal(t, 30.0, iv.Top().Z())
	assert.Equal(t, 10.0, iv.Base().Z())
}

// TestInterval_CopyIndependence confirms that copies share nothing.
func TestInterval_CopyIndependence(t *testing.T) {
	iv := core.Between(0, 10,
		core.WithComponents(sand()),
		core.WithData(map[string]core.Value{"GR": core.Num(40)}),
	)
	cp := iv.Copy()
	cp.SetTop(core.At(5))
	cp.PutData("GR", core.Num(99))
	cp.SetComponents([]core.Component{shale()})

	assert.Equal(t, 0.0, iv.Top().Z())
	assert.Equal(t, 40.0, iv.Data()["GR"].Float())
	p, _ := iv.Primary()
	assert.True(t, p.Equal(sand()))
}

// TestInterval_AboveAndSameTop pins the direction-aware ordering compare.
func TestInterval_AboveAndSameTop(t *testing.T) {
	a := core.Between(10, 20)
	b := core.Between(30, 40)
	assert.True(t, a.Above(b))
	assert.False(t, b.Above(a))

	// Elevation flips the comparison.
	e1 := core.Between(200, 180)
	e2 := core.Between(150, 120)
	assert.True(t, e1.Above(e2))
	assert.False(t, e2.Above(e1))

	c := core.Between(10, 99, core.WithDescription("different content"))
	assert.True(t, a.SameTop(c), "ordering equality looks at tops only")
}
