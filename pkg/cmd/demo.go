package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/rescale/pkg/chart"
	"github.com/c9s/rescale/pkg/data/tsv"
	"github.com/c9s/rescale/pkg/dataset"
	"github.com/c9s/rescale/pkg/scale"
)

func init() {
	RootCmd.AddCommand(DemoCmd)
}

var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "generate the outlier dataset, rescale it both ways and render scatter charts",

	SilenceUsage: true,
	RunE:         demo,
}

func demo(cmd *cobra.Command, args []string) error {
	outputDir := viper.GetString("output-dir")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return errors.Wrapf(err, "can not create output dir %s", outputDir)
	}

	raw := buildTable()
	log.Infof("assembled %d rows (axis1 max %v, axis2 max %v)",
		raw.NumRows(), raw.Axis1.Max(), raw.Axis2.Max())

	normalized, err := scale.MinMaxTable(raw)
	if err != nil {
		return errors.Wrap(err, "min-max normalization failed")
	}

	standardized, err := scale.ZScoreTable(raw)
	if err != nil {
		return errors.Wrap(err, "z-score standardization failed")
	}

	// after min-max rescaling the non-outlier axis1 values huddle near the
	// low end of [0, 1]; after z-score rescaling the body keeps its spread
	// and only the outlier sits past the 2-sigma band
	log.Infof("min-max: largest non-outlier axis1 value maps to %.4f",
		normalized.Axis1[:raw.NumRows()-1].Max())
	log.Infof("z-score: outlier stands at %.4f standardized units",
		standardized.Axis1.Last())

	for _, out := range []struct {
		name  string
		title string
		table *dataset.Table
	}{
		{"raw", "raw dataset", raw},
		{"minmax", "min-max normalized", normalized},
		{"zscore", "z-score standardized", standardized},
	} {
		if err := writeOutputs(outputDir, out.name, out.title, out.table); err != nil {
			return err
		}
	}

	return nil
}

func writeOutputs(outputDir, name, title string, t *dataset.Table) error {
	canvas := chart.NewCanvas(title)
	if err := canvas.PlotTable("samples", t); err != nil {
		return err
	}

	pngPath := filepath.Join(outputDir, name+".png")
	if err := canvas.SaveTo(pngPath); err != nil {
		return err
	}
	log.Infof("chart saved to %s", pngPath)

	tsvPath := filepath.Join(outputDir, name+".tsv")
	w, err := tsv.NewWriterFile(tsvPath)
	if err != nil {
		return errors.Wrapf(err, "can not create %s", tsvPath)
	}

	if err := w.WriteTable(t); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "can not write table to %s", tsvPath)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "can not close %s", tsvPath)
	}
	log.Infof("table saved to %s", tsvPath)

	return nil
}
