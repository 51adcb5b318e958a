/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
)

var (
	topArtistsNumber     int
	topArtistsAustralian bool
	topArtistsFrom       int
	topArtistsTo         int
)

var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Lists the artists with the most chart appearances",
	Long:  `Ranks artists by total chart appearances, with best and average position, first and last chart date, and #1 hits.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout, topArtistsNumber, analysis.Filter{
			StartYear:      topArtistsFrom,
			EndYear:        topArtistsTo,
			AustralianOnly: topArtistsAustralian,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 20, "number of artists to return")
	topArtistsCmd.Flags().BoolVar(&topArtistsAustralian, "australian", false, "only include Australian-flagged entries")
	topArtistsCmd.Flags().IntVar(&topArtistsFrom, "from", 0, "first year to include (inclusive)")
	topArtistsCmd.Flags().IntVar(&topArtistsTo, "to", 0, "last year to include (inclusive)")
}

func printTopArtists(out io.Writer, n int, filter analysis.Filter) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	stats, err := analysis.TopArtists(ds, n, filter)
	if err != nil {
		return err
	}

	results := [][]string{{"Artist", "Appearances", "Best", "Avg", "First Chart", "Last Chart", "#1 Hits"}}
	for _, s := range stats {
		results = append(results, []string{
			s.Artist,
			strconv.Itoa(s.Appearances),
			strconv.Itoa(s.BestPosition),
			fmt.Sprintf("%.1f", s.AvgPosition),
			s.FirstChart.Format(dateFormat),
			s.LastChart.Format(dateFormat),
			strconv.Itoa(s.NumberOneHits),
		})
	}

	summary := fmt.Sprintf("Top %d artists by chart appearances", len(stats))
	if filter.AustralianOnly {
		summary += " (Australian only)"
	}
	if filter.StartYear != 0 || filter.EndYear != 0 {
		summary += fmt.Sprintf(" (%s)", describeYears(filter))
	}

	fmt.Fprintln(out, Analysis{results: results, summary: summary})
	return nil
}

func describeYears(filter analysis.Filter) string {
	switch {
	case filter.StartYear != 0 && filter.EndYear != 0:
		return fmt.Sprintf("%d-%d", filter.StartYear, filter.EndYear)
	case filter.StartYear != 0:
		return fmt.Sprintf("from %d", filter.StartYear)
	default:
		return fmt.Sprintf("to %d", filter.EndYear)
	}
}
