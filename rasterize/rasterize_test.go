package rasterize_test

import (
	"math"
	"testing"

	"github.com/agilescientific/striplog/core"
	"github.com/agilescientific/striplog/rasterize"
	"github.com/agilescientific/striplog/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sand() core.Component {
	return core.NewComponent(map[string]core.Value{"lithology": core.Str("sandstone")})
}

func shale() core.Component {
	return core.NewComponent(map[string]core.Value{"lithology": core.Str("shale")})
}

func twoUnitLog(t *testing.T) *strip.Striplog {
	t.Helper()
	s, err := strip.New([]core.Interval{
		core.Between(0, 10, core.WithComponents(sand())),
		core.Between(10, 20, core.WithComponents(shale())),
	})
	require.NoError(t, err)
	return s
}

func TestToLog_Defaults(t *testing.T) {
	s := twoUnitLog(t)

	log, err := rasterize.ToLog(s, rasterize.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, log.Basis, 21)
	assert.Equal(t, 0.0, log.Basis[0])
	assert.Equal(t, 20.0, log.Basis[20])
	require.Len(t, log.Table, 2)
	assert.True(t, log.Table[0].Equal(sand()))

	assert.Equal(t, 1.0, log.Values[0])
	assert.Equal(t, 1.0, log.Values[9])
	assert.Equal(t, 2.0, log.Values[10], "the deeper unit wins the shared contact sample")
	assert.Equal(t, 2.0, log.Values[20])
}

func TestToLog_StepAndWindow(t *testing.T) {
	s := twoUnitLog(t)

	opts := rasterize.DefaultOptions()
	opts.Step = 5
	opts.Start = 5
	opts.Stop = 20
	log, err := rasterize.ToLog(s, opts)
	require.NoError(t, err)

	require.Len(t, log.Basis, 4) // 5, 10, 15, 20
	assert.Equal(t, []float64{1, 2, 2, 2}, log.Values)
}

func TestToLog_UndefinedFillsGaps(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 5, core.WithComponents(sand())),
		core.Between(10, 15, core.WithComponents(shale())),
	})
	require.NoError(t, err)

	opts := rasterize.DefaultOptions()
	opts.Undefined = math.NaN()
	log, err := rasterize.ToLog(s, opts)
	require.NoError(t, err)

	assert.Equal(t, 1.0, log.Values[5])
	assert.True(t, math.IsNaN(log.Values[7]), "gap samples carry the sentinel")
	assert.Equal(t, 2.0, log.Values[10])
}

func TestToLog_FieldMode(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 10, core.WithData(map[string]core.Value{"gr": core.Num(55.5)})),
		core.Between(10, 20), // no gr value
	})
	require.NoError(t, err)

	opts := rasterize.DefaultOptions()
	opts.Field = "gr"
	opts.Undefined = -999.25
	log, err := rasterize.ToLog(s, opts)
	require.NoError(t, err)

	assert.Nil(t, log.Table, "field mode carries raw values, not a table")
	assert.Equal(t, 55.5, log.Values[3])
	assert.Equal(t, -999.25, log.Values[15])
}

func TestToLog_Errors(t *testing.T) {
	s := twoUnitLog(t)

	opts := rasterize.DefaultOptions()
	opts.Step = 0
	_, err := rasterize.ToLog(s, opts)
	assert.ErrorIs(t, err, rasterize.ErrStep)

	points, err := strip.New([]core.Interval{core.PointAt(core.At(3))})
	require.NoError(t, err)
	_, err = rasterize.ToLog(points, rasterize.DefaultOptions())
	assert.ErrorIs(t, err, rasterize.ErrUnordered)
}

func TestFromLog_RoundTrip(t *testing.T) {
	s := twoUnitLog(t)

	log, err := rasterize.ToLog(s, rasterize.DefaultOptions())
	require.NoError(t, err)

	back, err := rasterize.FromLog(log.Values, log.Basis, rasterize.Options{Table: log.Table})
	require.NoError(t, err)

	require.Equal(t, 2, back.Len())
	assert.Equal(t, 0.0, back.Interval(0).Top().Z())
	assert.Equal(t, 10.0, back.Interval(0).Base().Z())
	assert.Equal(t, 20.0, back.Interval(1).Base().Z())

	p, _ := back.Interval(0).Primary()
	assert.True(t, p.Equal(sand()))
	p, _ = back.Interval(1).Primary()
	assert.True(t, p.Equal(shale()))
}

func TestFromLog_UndefinedBecomesGap(t *testing.T) {
	values := []float64{1, 1, 0, 0, 2, 2}
	basis := []float64{0, 1, 2, 3, 4, 5}

	s, err := rasterize.FromLog(values, basis, rasterize.Options{
		Table: []core.Component{sand(), shale()},
	})
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 0.0, s.Interval(0).Top().Z())
	assert.Equal(t, 2.0, s.Interval(0).Base().Z())
	assert.Equal(t, 4.0, s.Interval(1).Top().Z())
	assert.Equal(t, 5.0, s.Interval(1).Base().Z())

	gaps := s.FindGaps()
	require.NotNil(t, gaps)
	assert.Equal(t, 1, gaps.Len())
}

func TestFromLog_NaNUndefined(t *testing.T) {
	nan := math.NaN()
	values := []float64{nan, 1, 1, nan}
	basis := []float64{0, 1, 2, 3}

	s, err := rasterize.FromLog(values, basis, rasterize.Options{
		Table:     []core.Component{sand()},
		Undefined: nan,
	})
	require.NoError(t, err)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 1.0, s.Interval(0).Top().Z())
	assert.Equal(t, 3.0, s.Interval(0).Base().Z())
}

func TestFromLog_FieldMode(t *testing.T) {
	values := []float64{7.5, 7.5, 3.25}
	basis := []float64{100, 101, 102}

	s, err := rasterize.FromLog(values, basis, rasterize.Options{Field: "porosity"})
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	v := s.Interval(0).Data()["porosity"]
	assert.Equal(t, 7.5, v.Float())
}

func TestFromLog_Errors(t *testing.T) {
	_, err := rasterize.FromLog([]float64{1}, []float64{1, 2}, rasterize.Options{})
	assert.ErrorIs(t, err, rasterize.ErrLengthMismatch)

	_, err = rasterize.FromLog([]float64{9}, []float64{0}, rasterize.Options{
		Table: []core.Component{sand()},
	})
	assert.ErrorIs(t, err, rasterize.ErrTableIndex)
}
