package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
	"github.com/ariatools/aria-chart-tools/internal/chartplot"
)

var decadesPlotPath string

var decadesCmd = &cobra.Command{
	Use:   "decades",
	Short: "Compares chart activity across decades",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printDecades(os.Stdout, decadesPlotPath); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decadesCmd)

	decadesCmd.Flags().StringVar(&decadesPlotPath, "plot", "", "write a PNG bar chart of entries per decade to this path")
}

func printDecades(out io.Writer, plotPath string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	stats, err := analysis.Decades(ds)
	if err != nil {
		return err
	}

	header := []string{"Decade", "Entries", "Artists", "Titles", "Top Artist", "Weeks"}
	if ds.HasAusFlag() {
		header = []string{"Decade", "Entries", "Artists", "Titles", "Australian %", "Top Artist", "Weeks"}
	}
	results := [][]string{header}
	for _, d := range stats {
		row := []string{
			fmt.Sprintf("%ds", d.Decade),
			strconv.Itoa(d.Entries),
			strconv.Itoa(d.DistinctArtists),
			strconv.Itoa(d.DistinctTitles),
		}
		if ds.HasAusFlag() {
			row = append(row, fmt.Sprintf("%.1f", d.AustralianPct))
		}
		row = append(row, d.TopArtist, strconv.Itoa(d.TopArtistWeeks))
		results = append(results, row)
	}

	summary := fmt.Sprintf("%d decades of chart data", len(stats))
	fmt.Fprintln(out, Analysis{results: results, summary: summary})

	if plotPath != "" {
		if err := writePlot(plotPath, func(w io.Writer) error {
			return chartplot.RenderDecades(stats, w)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Chart written to %s\n", plotPath)
	}

	return nil
}
