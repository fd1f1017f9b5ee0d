package scale

import (
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/rescale/pkg/dataset"
	"github.com/c9s/rescale/pkg/datatype/floats"
)

// ZScore rescales the series to zero mean and unit sample standard
// deviation (n-1 denominator):
//
//	y[i] = (x[i] - mean(x)) / stddev(x)
//
// The divisor is a collective statistic rather than an extremum, so a single
// outlier shifts the result only slightly; the outlier itself stays visible
// well beyond the +-2 band while the body keeps its spread.
func ZScore(x floats.Slice) (floats.Slice, error) {
	mean, std := stat.MeanStdDev(x, nil)
	if std == 0 {
		return nil, &DegenerateRangeError{Stat: "standard deviation", Value: mean}
	}

	return x.AddScalar(-mean).DivScalar(std), nil
}

// ZScoreTable applies ZScore to each column of the table independently.
func ZScoreTable(t *dataset.Table) (*dataset.Table, error) {
	return t.Map(ZScore)
}
