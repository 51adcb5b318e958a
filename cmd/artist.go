package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
	"github.com/ariatools/aria-chart-tools/internal/chartplot"
)

var artistPlotPath string

var artistCmd = &cobra.Command{
	Use:   "artist <name>",
	Short: "Shows an artist's complete chart history",
	Long:  `Matches the artist name as a case-insensitive substring, e.g. 'kylie' finds Kylie Minogue.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		err := printArtistHistory(os.Stdout, name, artistPlotPath)
		if errors.Is(err, analysis.ErrArtistNotFound) {
			fmt.Printf("No chart entries found for artist matching %q\n", name)
			return
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistCmd)

	artistCmd.Flags().StringVar(&artistPlotPath, "plot", "", "write a PNG chart of the artist's history to this path")
}

func printArtistHistory(out io.Writer, name, plotPath string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	history, err := analysis.History(ds, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Chart history: %s\n\n", history.DisplayName)
	fmt.Fprintf(out, "First chart appearance: %s\n", history.First.Format(dateFormat))
	fmt.Fprintf(out, "Most recent appearance: %s\n", history.Last.Format(dateFormat))
	fmt.Fprintf(out, "Total weeks on chart: %d\n", history.TotalWeeks)
	fmt.Fprintf(out, "Different titles: %d\n", history.DistinctTitles)
	fmt.Fprintf(out, "Best chart position: #%d\n", history.BestPosition)
	fmt.Fprintf(out, "Average chart position: #%.1f\n", history.AvgPosition)

	if len(history.NumberOnes) > 0 {
		fmt.Fprintf(out, "\n#1 hits (%d):\n", len(history.NumberOnes))
		for _, run := range history.NumberOnes {
			fmt.Fprintf(out, "  - %s (%d %s at #1)\n", run.Title, run.Weeks, plural(run.Weeks, "week", "weeks"))
		}
	}

	if len(history.TopTens) > 0 {
		fmt.Fprintf(out, "\nTop 10 hits (%d):\n", len(history.TopTens))
		for _, peak := range history.TopTens {
			fmt.Fprintf(out, "  - %s (peaked at #%d, %d %s in top 10)\n",
				peak.Title, peak.Peak, peak.Weeks, plural(peak.Weeks, "week", "weeks"))
		}
	}

	if plotPath != "" {
		if err := writePlot(plotPath, func(w io.Writer) error {
			return chartplot.RenderHistory(history, w)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nChart written to %s\n", plotPath)
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func writePlot(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
