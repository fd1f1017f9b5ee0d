package chart

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/rescale/pkg/dataset"
	"github.com/c9s/rescale/pkg/datatype/floats"
)

type Canvas struct {
	chart.Chart
}

func NewCanvas(title string) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: chart.FloatValueFormatter,
			},
			YAxis: chart.YAxis{
				ValueFormatter: chart.FloatValueFormatter,
			},
		},
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// PlotScatter adds a dot-only series of (x, y) pairs to the canvas. The two
// sequences must have the same length.
func (canvas *Canvas) PlotScatter(tag string, x, y floats.Slice) error {
	if len(x) != len(y) {
		return &dataset.ShapeMismatchError{Len1: len(x), Len2: len(y)}
	}
	if len(x) == 0 {
		return nil
	}

	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    tag,
		XValues: x,
		YValues: y,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
		},
	})
	return nil
}

// PlotTable plots the table's axis1 column against its axis2 column.
func (canvas *Canvas) PlotTable(tag string, t *dataset.Table) error {
	return canvas.PlotScatter(tag, t.Axis1, t.Axis2)
}

func (canvas *Canvas) Render(w io.Writer) error {
	return canvas.Chart.Render(chart.PNG, w)
}

func (canvas *Canvas) SaveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can not create %s", path)
	}
	defer f.Close()

	if err := canvas.Render(f); err != nil {
		return errors.Wrapf(err, "can not render chart to %s", path)
	}
	return nil
}
