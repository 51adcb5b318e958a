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
	topSongsNumber     int
	topSongsBy         string
	topSongsAustralian bool
)

var topSongsCmd = &cobra.Command{
	Use:   "top-songs",
	Short: "Lists the top songs or albums by a chart metric",
	Long: `Ranks (artist, title) pairs by one of:
  weeks    total weeks on the chart
  peak     best position reached
  top10    weeks spent in the top 10
  number1  weeks spent at #1`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTopSongs(os.Stdout, topSongsNumber, topSongsBy, topSongsAustralian); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topSongsCmd)

	topSongsCmd.Flags().IntVarP(&topSongsNumber, "number", "n", 20, "number of songs to return")
	topSongsCmd.Flags().StringVar(&topSongsBy, "by", "weeks", "metric: weeks, peak, top10, or number1")
	topSongsCmd.Flags().BoolVar(&topSongsAustralian, "australian", false, "only include Australian-flagged entries")
}

func printTopSongs(out io.Writer, n int, by string, australianOnly bool) error {
	metric, err := analysis.ParseSongMetric(by)
	if err != nil {
		return err
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	stats, err := analysis.TopSongs(ds, n, metric, analysis.Filter{AustralianOnly: australianOnly})
	if err != nil {
		return err
	}

	results := [][]string{songHeader(metric)}
	for _, s := range stats {
		results = append(results, songRow(metric, s))
	}

	summary := fmt.Sprintf("Top %d songs by %s", len(stats), metric)
	if australianOnly {
		summary += " (Australian only)"
	}

	fmt.Fprintln(out, Analysis{results: results, summary: summary})
	return nil
}

func songHeader(metric analysis.SongMetric) []string {
	switch metric {
	case analysis.ByPeak:
		return []string{"Artist", "Title", "Peak", "Weeks on Chart"}
	case analysis.ByTop10:
		return []string{"Artist", "Title", "Weeks in Top 10", "Peak"}
	case analysis.ByNumberOne:
		return []string{"Artist", "Title", "Weeks at #1", "Total Weeks"}
	default:
		return []string{"Artist", "Title", "Weeks on Chart", "Peak"}
	}
}

func songRow(metric analysis.SongMetric, s analysis.SongStat) []string {
	switch metric {
	case analysis.ByPeak:
		return []string{s.Artist, s.Title, strconv.Itoa(s.Peak), strconv.Itoa(s.Weeks)}
	case analysis.ByTop10:
		return []string{s.Artist, s.Title, strconv.Itoa(s.Weeks), strconv.Itoa(s.Peak)}
	case analysis.ByNumberOne:
		return []string{s.Artist, s.Title, strconv.Itoa(s.WeeksAtNumberOne), strconv.Itoa(s.TotalWeeks)}
	default:
		return []string{s.Artist, s.Title, strconv.Itoa(s.Weeks), strconv.Itoa(s.Peak)}
	}
}
