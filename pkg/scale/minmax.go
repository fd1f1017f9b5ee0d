package scale

import (
	"github.com/c9s/rescale/pkg/dataset"
	"github.com/c9s/rescale/pkg/datatype/floats"
)

// MinMax rescales the series into [0, 1] using its own minimum and maximum:
//
//	y[i] = (x[i] - min(x)) / (max(x) - min(x))
//
// The mapping is a strictly increasing affine function, so the order of
// values is preserved. A single extreme value dominates the denominator and
// compresses the rest of the series toward one end of the interval.
func MinMax(x floats.Slice) (floats.Slice, error) {
	min, max := floats.Extent(x)
	if max == min {
		return nil, &DegenerateRangeError{Stat: "range", Value: min}
	}

	return x.AddScalar(-min).DivScalar(max - min), nil
}

// MinMaxTable applies MinMax to each column of the table independently.
func MinMaxTable(t *dataset.Table) (*dataset.Table, error) {
	return t.Map(MinMax)
}
