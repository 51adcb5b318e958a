package chartplot

import (
	"bytes"
	"testing"
	"time"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func checkPNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return d
}

func TestRenderHistory(t *testing.T) {
	h := &analysis.ArtistHistory{
		DisplayName: "Kylie Minogue",
		TopTens: []analysis.TitlePeak{
			{Title: "Spinning Around", Peak: 1, Weeks: 4},
			{Title: "On a Night Like This", Peak: 2, Weeks: 3},
		},
		Entries: []dataset.ChartEntry{
			{ChartDate: date(t, "2000-06-19"), Artist: "Kylie Minogue", Title: "Spinning Around", Position: 1},
			{ChartDate: date(t, "2000-06-26"), Artist: "Kylie Minogue", Title: "Spinning Around", Position: 2},
			{ChartDate: date(t, "2000-09-11"), Artist: "Kylie Minogue", Title: "On a Night Like This", Position: 2},
		},
	}

	var buf bytes.Buffer
	if err := RenderHistory(h, &buf); err != nil {
		t.Fatalf("RenderHistory error: %v", err)
	}
	checkPNG(t, &buf)
}

func TestRenderHistorySingleEntry(t *testing.T) {
	h := &analysis.ArtistHistory{
		DisplayName: "One Hit",
		Entries: []dataset.ChartEntry{
			{ChartDate: date(t, "1997-04-05"), Artist: "One Hit", Title: "Wonder", Position: 12},
		},
	}

	var buf bytes.Buffer
	if err := RenderHistory(h, &buf); err != nil {
		t.Fatalf("RenderHistory error: %v", err)
	}
	checkPNG(t, &buf)
}

func TestRenderNationalTrend(t *testing.T) {
	stats := &analysis.NationalStats{
		Years: []analysis.YearShare{
			{Year: 2018, Entries: 100, Australian: 20, Pct: 20},
			{Year: 2019, Entries: 100, Australian: 25, Pct: 25},
			{Year: 2020, Entries: 100, Australian: 30, Pct: 30},
		},
	}

	var buf bytes.Buffer
	if err := RenderNationalTrend(stats, &buf); err != nil {
		t.Fatalf("RenderNationalTrend error: %v", err)
	}
	checkPNG(t, &buf)
}

func TestRenderNationalTrendSingleYear(t *testing.T) {
	stats := &analysis.NationalStats{
		Years: []analysis.YearShare{
			{Year: 2020, Entries: 50, Australian: 10, Pct: 20},
		},
	}

	var buf bytes.Buffer
	if err := RenderNationalTrend(stats, &buf); err != nil {
		t.Fatalf("RenderNationalTrend error: %v", err)
	}
	checkPNG(t, &buf)
}

func TestRenderDecades(t *testing.T) {
	stats := []analysis.DecadeStats{
		{Decade: 1990, Entries: 520},
		{Decade: 2000, Entries: 510},
		{Decade: 2010, Entries: 480},
	}

	var buf bytes.Buffer
	if err := RenderDecades(stats, &buf); err != nil {
		t.Fatalf("RenderDecades error: %v", err)
	}
	checkPNG(t, &buf)
}
