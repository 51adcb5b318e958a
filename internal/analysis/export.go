package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

const dateFormat = "2006-01-02"

// WriteInsights writes the fixed-layout analysis summary: header, chart
// type, date range, entry and artist totals, and the top 20 artists by
// appearances. Write failures surface as the writer's error; the dataset is
// untouched either way.
func WriteInsights(ds *dataset.Dataset, w io.Writer) error {
	if ds == nil {
		return dataset.ErrNoData
	}

	overview, err := Overview(ds)
	if err != nil {
		return err
	}
	top, err := TopArtists(ds, 20, Filter{})
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	banner := strings.Repeat("=", 70)

	fmt.Fprintln(ew, banner)
	fmt.Fprintln(ew, "ARIA CHARTS ANALYSIS SUMMARY")
	fmt.Fprintf(ew, "Chart Type: %s\n", overview.ChartType)
	fmt.Fprintln(ew, banner)
	fmt.Fprintln(ew)

	if overview.Entries > 0 {
		fmt.Fprintf(ew, "Date Range: %s to %s\n",
			overview.FirstDate.Format(dateFormat), overview.LastDate.Format(dateFormat))
	} else {
		fmt.Fprintln(ew, "Date Range: (no entries)")
	}
	fmt.Fprintf(ew, "Total Entries: %d\n", overview.Entries)
	fmt.Fprintf(ew, "Unique Artists: %d\n", overview.Artists)
	fmt.Fprintln(ew)

	fmt.Fprintln(ew, "TOP 20 ARTISTS BY APPEARANCES:")
	for i, artist := range top {
		fmt.Fprintf(ew, "%3d. %s (%d)\n", i+1, artist.Artist, artist.Appearances)
	}

	return ew.err
}

// errWriter remembers the first write error so the caller checks once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
