package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/rescale/pkg/dataset"
	"github.com/c9s/rescale/pkg/datatype/floats"
)

// 0..39 with one far outlier, the reference teaching sequence
func outlierSeries() floats.Slice {
	var x floats.Slice
	for i := 0; i < 40; i++ {
		x = x.Push(float64(i))
	}
	return x.Push(80)
}

func TestMinMax(t *testing.T) {
	y, err := MinMax(floats.New(10, 20, 30, 40))
	require.NoError(t, err)
	require.Equal(t, 4, y.Length())

	assert.InDelta(t, 0.0, y[0], 1e-12)
	assert.InDelta(t, 1.0/3.0, y[1], 1e-12)
	assert.InDelta(t, 2.0/3.0, y[2], 1e-12)
	assert.InDelta(t, 1.0, y[3], 1e-12)
}

func TestMinMaxBounds(t *testing.T) {
	tests := []struct {
		name string
		x    floats.Slice
	}{
		{"sorted", floats.New(10, 20, 30, 40)},
		{"unsorted", floats.New(3, -7, 15, 0, 9)},
		{"with outlier", outlierSeries()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := MinMax(tt.x)
			require.NoError(t, err)
			assert.Equal(t, 0.0, y.Min())
			assert.Equal(t, 1.0, y.Max())
		})
	}
}

func TestMinMaxOutlierCompression(t *testing.T) {
	y, err := MinMax(outlierSeries())
	require.NoError(t, err)

	// adjacent gaps inside the body are uniform
	bodyGap := y[1] - y[0]
	outlierGap := y[40] - y[39]
	assert.Greater(t, outlierGap, 40*bodyGap,
		"the outlier must compress the body toward zero")

	// the whole body ends up inside the lower half of [0, 1]
	assert.Less(t, y[39], 0.5)
}

func TestZScore(t *testing.T) {
	y, err := ZScore(floats.New(10, 20, 30, 40))
	require.NoError(t, err)
	require.Equal(t, 4, y.Length())

	assert.InDelta(t, -1.1619, y[0], 1e-4)
	assert.InDelta(t, -0.3873, y[1], 1e-4)
	assert.InDelta(t, 0.3873, y[2], 1e-4)
	assert.InDelta(t, 1.1619, y[3], 1e-4)
}

func TestZScoreMoments(t *testing.T) {
	tests := []struct {
		name string
		x    floats.Slice
	}{
		{"small", floats.New(10, 20, 30, 40)},
		{"with outlier", outlierSeries()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := ZScore(tt.x)
			require.NoError(t, err)
			assert.Less(t, math.Abs(y.Mean()), 1e-9)
			assert.Less(t, math.Abs(y.Stdev()-1), 1e-9)
		})
	}
}

func TestZScoreOutlierVisibility(t *testing.T) {
	y, err := ZScore(outlierSeries())
	require.NoError(t, err)

	assert.Greater(t, math.Abs(y[40]), 2.5, "the outlier must stand out")

	within := 0
	for _, v := range y[:40] {
		if v >= -2 && v <= 2 {
			within++
		}
	}
	assert.GreaterOrEqual(t, float64(within), 0.95*40,
		"the body must keep its spread around zero")
}

func TestOrderPreservation(t *testing.T) {
	x := floats.New(3, -7, 15, 0, 9, 80)
	transforms := map[string]func(floats.Slice) (floats.Slice, error){
		"minmax": MinMax,
		"zscore": ZScore,
	}
	for name, f := range transforms {
		t.Run(name, func(t *testing.T) {
			y, err := f(x)
			require.NoError(t, err)
			for i := 0; i < x.Length(); i++ {
				for j := 0; j < x.Length(); j++ {
					if x[i] < x[j] {
						assert.Less(t, y[i], y[j])
					}
				}
			}
		})
	}
}

func TestDegenerateRange(t *testing.T) {
	for name, f := range map[string]func(floats.Slice) (floats.Slice, error){
		"minmax": MinMax,
		"zscore": ZScore,
	} {
		t.Run(name, func(t *testing.T) {
			y, err := f(floats.New(5, 5, 5))
			require.Error(t, err)
			assert.Nil(t, y, "no partial result on error")

			var degenerateErr *DegenerateRangeError
			require.ErrorAs(t, err, &degenerateErr)
			assert.Equal(t, 5.0, degenerateErr.Value)
		})
	}
}

func TestTableTransforms(t *testing.T) {
	tb, err := dataset.NewTable(floats.New(10, 20, 30, 40), floats.New(1, 2, 3, 4))
	require.NoError(t, err)

	normalized, err := MinMaxTable(tb)
	require.NoError(t, err)
	assert.Equal(t, 0.0, normalized.Axis1.Min())
	assert.Equal(t, 1.0, normalized.Axis1.Max())
	assert.Equal(t, 0.0, normalized.Axis2.Min())
	assert.Equal(t, 1.0, normalized.Axis2.Max())

	standardized, err := ZScoreTable(tb)
	require.NoError(t, err)
	assert.Less(t, math.Abs(standardized.Axis1.Mean()), 1e-9)
	assert.Less(t, math.Abs(standardized.Axis2.Mean()), 1e-9)

	// source table untouched
	assert.Equal(t, 10.0, tb.Axis1[0])

	// a constant column fails the whole table transform
	flat, err := dataset.NewTable(floats.New(1, 2, 3), floats.New(7, 7, 7))
	require.NoError(t, err)
	_, err = MinMaxTable(flat)
	var degenerateErr *DegenerateRangeError
	require.ErrorAs(t, err, &degenerateErr)
}
