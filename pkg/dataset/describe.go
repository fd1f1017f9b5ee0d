package dataset

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/c9s/rescale/pkg/datatype/floats"
)

// ColumnSummary holds the descriptive statistics of one column.
type ColumnSummary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Stdev  float64
	Median float64
}

func summarize(name string, col floats.Slice) (ColumnSummary, error) {
	median, err := stats.Median(stats.Float64Data(col))
	if err != nil {
		return ColumnSummary{}, errors.Wrapf(err, "can not compute median of column %s", name)
	}

	return ColumnSummary{
		Name:   name,
		Count:  col.Length(),
		Min:    col.Min(),
		Max:    col.Max(),
		Mean:   col.Mean(),
		Stdev:  col.Stdev(),
		Median: median,
	}, nil
}

// Describe returns per-column descriptive statistics of the table.
func (t *Table) Describe() ([]ColumnSummary, error) {
	var out []ColumnSummary
	for _, col := range []struct {
		name string
		data floats.Slice
	}{
		{"axis1", t.Axis1},
		{"axis2", t.Axis2},
	} {
		s, err := summarize(col.name, col.data)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
