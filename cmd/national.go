package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
	"github.com/ariatools/aria-chart-tools/internal/chartplot"
)

var nationalPlotPath string

var nationalCmd = &cobra.Command{
	Use:   "national",
	Short: "Analyses Australian versus international content",
	Run: func(cmd *cobra.Command, args []string) {
		err := printNationalContent(os.Stdout, nationalPlotPath)
		if errors.Is(err, analysis.ErrMissingAusFlag) {
			fmt.Println("Australian flag data is not available in this dataset")
			return
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(nationalCmd)

	nationalCmd.Flags().StringVar(&nationalPlotPath, "plot", "", "write a PNG chart of the yearly trend to this path")
}

func printNationalContent(out io.Writer, plotPath string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	stats, err := analysis.NationalContent(ds)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Australian entries: %d (%.1f%%)\n", stats.Australian, stats.Pct)
	fmt.Fprintf(out, "International entries: %d (%.1f%%)\n", stats.Entries-stats.Australian, 100-stats.Pct)

	if len(stats.Years) > 0 {
		fmt.Fprintf(out, "\nMost Australian year: %d (%.1f%%)\n",
			stats.MostAustralian.Year, stats.MostAustralian.Pct)
		fmt.Fprintf(out, "Least Australian year: %d (%.1f%%)\n",
			stats.LeastAustralian.Year, stats.LeastAustralian.Pct)
	}

	if plotPath != "" {
		if err := writePlot(plotPath, func(w io.Writer) error {
			return chartplot.RenderNationalTrend(stats, w)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nChart written to %s\n", plotPath)
	}

	return nil
}
