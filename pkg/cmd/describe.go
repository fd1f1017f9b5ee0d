package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/rescale/pkg/dataset"
	"github.com/c9s/rescale/pkg/scale"
	"github.com/c9s/rescale/pkg/style"
)

func init() {
	DescribeCmd.Flags().String("scaler", "raw", "table to describe: raw, minmax or zscore")
	RootCmd.AddCommand(DescribeCmd)
}

var DescribeCmd = &cobra.Command{
	Use:   "describe [--scaler=raw|minmax|zscore]",
	Short: "print per-column descriptive statistics of the demo dataset",

	SilenceUsage: true,
	RunE:         describe,
}

func describe(cmd *cobra.Command, args []string) error {
	scaler, err := cmd.Flags().GetString("scaler")
	if err != nil {
		return err
	}

	t := buildTable()
	switch scaler {
	case "raw":
	case "minmax":
		if t, err = scale.MinMaxTable(t); err != nil {
			return err
		}
	case "zscore":
		if t, err = scale.ZScoreTable(t); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown scaler %q, expecting raw, minmax or zscore", scaler)
	}

	summaries, err := t.Describe()
	if err != nil {
		return err
	}

	printSummaries(summaries)
	return nil
}

func printSummaries(summaries []dataset.ColumnSummary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(*style.NewDefaultTableStyle())
	tw.AppendHeader(table.Row{"column", "count", "min", "max", "mean", "stdev", "median"})
	for _, s := range summaries {
		tw.AppendRow(table.Row{
			s.Name,
			s.Count,
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Max),
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.Stdev),
			fmt.Sprintf("%.4f", s.Median),
		})
	}
	tw.Render()
}
