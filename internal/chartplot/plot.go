// Package chartplot renders analysis results as PNG charts. The output is
// presentational; nothing downstream parses it.
package chartplot

import (
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
)

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorAlternateGreen,
	chart.ColorAlternateBlue,
	chart.ColorAlternateYellow,
	chart.ColorAlternateGray,
	chart.ColorBlack,
}

func seriesStyle(i int) chart.Style {
	c := seriesColors[i%len(seriesColors)]
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: 2,
		DotColor:    c,
		DotWidth:    2,
	}
}

// RenderHistory draws one chart-position time series per title, up to ten
// titles ordered by best peak. Lower positions are better; the chart leaves
// the axis in natural order and labels it accordingly.
func RenderHistory(h *analysis.ArtistHistory, w io.Writer) error {
	titles := titlesByPeak(h)

	series := make([]chart.Series, 0, len(titles))
	for i, title := range titles {
		var xs []time.Time
		var ys []float64
		for _, e := range h.Entries {
			if e.Title != title {
				continue
			}
			xs = append(xs, e.ChartDate)
			ys = append(ys, float64(e.Position))
		}
		if len(xs) < 2 {
			// go-chart cannot draw a single-point line series.
			xs = append(xs, xs[0].AddDate(0, 0, 7))
			ys = append(ys, ys[0])
		}
		series = append(series, chart.TimeSeries{
			Name:    title,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(i),
		})
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s - chart history", h.DisplayName),
		Width:      1100,
		Height:     600,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      chart.YAxis{Name: "Chart position (1 = best)"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering history chart: %w", err)
	}
	return nil
}

func titlesByPeak(h *analysis.ArtistHistory) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, p := range h.TopTens {
		if !seen[p.Title] {
			seen[p.Title] = true
			titles = append(titles, p.Title)
		}
	}
	for _, e := range h.Entries {
		if len(titles) >= 10 {
			break
		}
		if !seen[e.Title] {
			seen[e.Title] = true
			titles = append(titles, e.Title)
		}
	}
	if len(titles) > 10 {
		titles = titles[:10]
	}
	return titles
}

// RenderNationalTrend draws the per-year Australian content percentage.
func RenderNationalTrend(stats *analysis.NationalStats, w io.Writer) error {
	var xs, ys []float64
	for _, y := range stats.Years {
		xs = append(xs, float64(y.Year))
		ys = append(ys, y.Pct)
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:      "Australian content over time",
		Width:      1100,
		Height:     500,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:  "% Australian",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%d", int(f))
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Australian %",
				XValues: xs,
				YValues: ys,
				Style:   seriesStyle(1),
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering national trend chart: %w", err)
	}
	return nil
}

// RenderDecades draws entry counts per decade as a bar chart.
func RenderDecades(stats []analysis.DecadeStats, w io.Writer) error {
	bars := make([]chart.Value, 0, len(stats))
	for _, d := range stats {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%ds", d.Decade),
			Value: float64(d.Entries),
		})
	}

	ch := chart.BarChart{
		Title:      "Chart entries per decade",
		Width:      900,
		Height:     500,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering decades chart: %w", err)
	}
	return nil
}
