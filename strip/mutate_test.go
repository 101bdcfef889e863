package strip_test

import (
	"math"
	"testing"

	"github.com/agilescientific/striplog/core"
	"github.com/agilescientific/striplog/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeOverlaps_PartialPair checks that a single overlapping pair
// becomes three contiguous pieces with blended content.
func TestMergeOverlaps_PartialPair(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(10, 30, core.WithComponents(sand())),
		core.Between(20, 40, core.WithComponents(shale())),
	})
	require.NoError(t, err)

	require.NoError(t, s.MergeOverlaps())
	require.Equal(t, 3, s.Len())
	assert.Nil(t, s.FindOverlaps())
	assert.Nil(t, s.FindGaps())

	mid := s.Interval(1)
	assert.Equal(t, 20.0, mid.Top().Z())
	assert.Equal(t, 30.0, mid.Base().Z())
	assert.Len(t, mid.Components(), 2, "overlap blends both components")
}

// TestMergeOverlaps_Cascade verifies the rebuild loop handles overlaps
// introduced by earlier merges until none remain.
func TestMergeOverlaps_Cascade(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 25),
		core.Between(10, 30),
		core.Between(28, 50),
	})
	require.NoError(t, err)

	require.NoError(t, s.MergeOverlaps())
	assert.Nil(t, s.FindOverlaps())
	assert.Equal(t, 0.0, s.Start().Z())
	assert.Equal(t, 50.0, s.Stop().Z())
}

// TestMergeOverlaps_SharedTop verifies that a nested pair starting at the
// same depth merges cleanly, with no zero-thickness artifact left behind.
func TestMergeOverlaps_SharedTop(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 100, core.WithComponents(sand())),
		core.Between(0, 50, core.WithComponents(shale())),
	})
	require.NoError(t, err)

	require.NoError(t, s.MergeOverlaps())
	require.Equal(t, 2, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Greater(t, s.Interval(i).Thickness(), 0.0)
	}
	assert.Equal(t, 0.0, s.Interval(0).Top().Z())
	assert.Equal(t, 50.0, s.Interval(0).Base().Z())
	assert.Equal(t, 100.0, s.Interval(1).Base().Z())
	assert.Nil(t, s.FindOverlaps())
}

func TestAnneal_Middle(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 10),
		core.Between(20, 30),
	})
	require.NoError(t, err)

	require.NoError(t, s.Anneal(strip.AnnealMiddle))
	assert.Nil(t, s.FindGaps())
	assert.Equal(t, 15.0, s.Interval(0).Base().Z())
	assert.Equal(t, 15.0, s.Interval(1).Top().Z())
}

func TestAnneal_DownAndUp(t *testing.T) {
	build := func(t *testing.T) *strip.Striplog {
		t.Helper()
		s, err := strip.New([]core.Interval{
			core.Between(0, 10),
			core.Between(20, 30),
		})
		require.NoError(t, err)
		return s
	}

	down := build(t)
	require.NoError(t, down.Anneal(strip.AnnealDown))
	assert.Equal(t, 20.0, down.Interval(0).Base().Z())
	assert.Equal(t, 20.0, down.Interval(1).Top().Z())

	up := build(t)
	require.NoError(t, up.Anneal(strip.AnnealUp))
	assert.Equal(t, 10.0, up.Interval(0).Base().Z())
	assert.Equal(t, 10.0, up.Interval(1).Top().Z())
}

func TestAnneal_Elevation(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(200, 180),
		core.Between(170, 150),
	})
	require.NoError(t, err)

	require.NoError(t, s.Anneal(strip.AnnealMiddle))
	assert.Nil(t, s.FindGaps())
	assert.Equal(t, 175.0, s.Interval(0).Base().Z())
	assert.Equal(t, 175.0, s.Interval(1).Top().Z())
}

func TestAnneal_BadMode(t *testing.T) {
	s := depthLog(t)
	assert.ErrorIs(t, s.Anneal(strip.AnnealMode(99)), strip.ErrAnnealMode)
	assert.NotNil(t, s.FindGaps(), "failed anneal leaves the gap in place")
}

func TestPrune_ExactlyOneMode(t *testing.T) {
	s := depthLog(t)
	assert.ErrorIs(t, s.Prune(strip.PruneOptions{}), strip.ErrPruneParams)
	assert.ErrorIs(t, s.Prune(strip.PruneOptions{Limit: 1, N: 1}), strip.ErrPruneParams)
	assert.Equal(t, 2, s.Len())
}

func TestPrune_Limit(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 2),
		core.Between(2, 30),
		core.Between(30, 31),
		core.Between(31, 60),
	})
	require.NoError(t, err)

	require.NoError(t, s.Prune(strip.PruneOptions{Limit: 5}))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 2.0, s.Interval(0).Top().Z())
}

func TestPrune_NAndKeepEnds(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 1),
		core.Between(1, 40),
		core.Between(40, 42),
		core.Between(42, 43),
	})
	require.NoError(t, err)

	require.NoError(t, s.Prune(strip.PruneOptions{N: 2, KeepEnds: true}))
	require.Equal(t, 3, s.Len(), "first and last survive selection")
	assert.Equal(t, 0.0, s.Interval(0).Top().Z())
	assert.Equal(t, 42.0, s.Interval(2).Top().Z())
}

func TestPrune_Percentile(t *testing.T) {
	// 4 intervals, 50% -> floor(4*50/100) = 2 removed.
	s, err := strip.New([]core.Interval{
		core.Between(0, 1),
		core.Between(1, 3),
		core.Between(3, 30),
		core.Between(30, 70),
	})
	require.NoError(t, err)

	require.NoError(t, s.Prune(strip.PruneOptions{Percentile: 50}))
	assert.Equal(t, 2, s.Len())
}

func TestPrune_CannotEmpty(t *testing.T) {
	s := depthLog(t)
	err := s.Prune(strip.PruneOptions{Limit: 1000})
	assert.ErrorIs(t, err, strip.ErrEmptyStriplog)
	assert.Equal(t, 2, s.Len(), "failed prune leaves the striplog unchanged")
}

func TestCrop_Depth(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 10),
		core.Between(10, 20),
		core.Between(20, 30),
	})
	require.NoError(t, err)

	require.NoError(t, s.Crop(5, 25))
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 5.0, s.Start().Z())
	assert.Equal(t, 25.0, s.Stop().Z())
	assert.Equal(t, 10.0, s.Interval(0).Base().Z(), "middle interval untouched")
}

func TestCrop_NaNKeepsExtent(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(0, 10),
		core.Between(10, 20),
	})
	require.NoError(t, err)

	require.NoError(t, s.Crop(math.NaN(), 15))
	assert.Equal(t, 0.0, s.Start().Z())
	assert.Equal(t, 15.0, s.Stop().Z())
}

func TestCrop_WithinOneInterval(t *testing.T) {
	s, err := strip.New([]core.Interval{core.Between(0, 100)})
	require.NoError(t, err)

	require.NoError(t, s.Crop(40, 60))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 40.0, s.Interval(0).Top().Z())
	assert.Equal(t, 60.0, s.Interval(0).Base().Z())
}

func TestCrop_Elevation(t *testing.T) {
	s, err := strip.New([]core.Interval{
		core.Between(200, 150),
		core.Between(150, 100),
	})
	require.NoError(t, err)

	require.NoError(t, s.Crop(120, 180))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 120.0, s.Start().Z())
	assert.Equal(t, 180.0, s.Stop().Z())
}

func TestCrop_OutsideExtent(t *testing.T) {
	s := depthLog(t)
	assert.ErrorIs(t, s.Crop(10, 500), strip.ErrCropExtent)
	assert.ErrorIs(t, s.Crop(32, 50), strip.ErrCropExtent, "boundary in a gap")
	assert.Equal(t, 2, s.Len())
}
