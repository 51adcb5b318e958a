package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Prints a quick overview of the loaded chart",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printOverview(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func printOverview(out io.Writer) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	stats, err := analysis.Overview(ds)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "ARIA %s chart\n\n", stats.ChartType)
	fmt.Fprintf(out, "Total entries: %d\n", stats.Entries)
	if stats.Entries > 0 {
		fmt.Fprintf(out, "Date range: %s to %s\n",
			stats.FirstDate.Format(dateFormat), stats.LastDate.Format(dateFormat))
		fmt.Fprintf(out, "Years covered: %d\n", stats.YearsCovered)
		fmt.Fprintf(out, "Weeks of data: %d\n", stats.Weeks)
		fmt.Fprintf(out, "Unique artists: %d\n", stats.Artists)
		fmt.Fprintf(out, "Unique titles: %d\n", stats.Titles)
		fmt.Fprintf(out, "Chart positions: %d to %d\n", stats.BestPosition, stats.WorstPosition)
	}
	if stats.HasAusFlag && stats.Entries > 0 {
		fmt.Fprintf(out, "\nAustralian entries: %d (%.1f%%)\n", stats.AustralianEntries, stats.AustralianPct)
		fmt.Fprintf(out, "Australian artists: %d\n", stats.AustralianArtists)
	}
	return nil
}
