package dataset

import (
	"fmt"
	"strings"
	"time"
)

// ChartType selects one of the published ARIA chart datasets.
type ChartType int

const (
	Singles ChartType = iota
	Albums
	NewSingles
)

const baseURL = "https://raw.githubusercontent.com/caseybriggs/aria-charts/main/"

func ParseChartType(s string) (ChartType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singles", "":
		return Singles, nil
	case "albums":
		return Albums, nil
	case "new-singles", "new_singles":
		return NewSingles, nil
	}
	return Singles, fmt.Errorf("unknown chart type %q (expected singles, albums, or new-singles)", s)
}

func (t ChartType) String() string {
	switch t {
	case Albums:
		return "albums"
	case NewSingles:
		return "new-singles"
	default:
		return "singles"
	}
}

// FileName is the name this chart is published under in the dataset repository.
func (t ChartType) FileName() string {
	switch t {
	case Albums:
		return "album_charts.csv"
	case NewSingles:
		return "newsingle_charts.csv"
	default:
		return "single_charts.csv"
	}
}

// URL is the raw GitHub location of this chart's CSV.
func (t ChartType) URL() string {
	return baseURL + t.FileName()
}

// ChartEntry is one row of a chart: a single title's position in a single
// week. Australian is nil when the dataset has no aus_flag column.
type ChartEntry struct {
	ChartDate  time.Time
	Artist     string
	Title      string
	Position   int
	Australian *bool
}
