package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
)

const testCSV = `chart_date,rank,artist,title,aus_flag
2000-06-19,1,Kylie Minogue,Spinning Around,True
2000-06-26,2,Kylie Minogue,Spinning Around,True
2000-06-19,2,Coldplay,Yellow,False
2010-03-06,1,Powderfinger,All of the Dreamers,True
`

// setTestSource points the loader at a throwaway CSV file for one test.
func setTestSource(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "single_charts.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0644); err != nil {
		t.Fatalf("writing test CSV: %v", err)
	}
	viper.Set("source", path)
	viper.Set("chart", "singles")
	t.Cleanup(func() {
		viper.Set("source", "")
		viper.Set("chart", "singles")
	})
}

func TestPrintOverview(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	if err := printOverview(&buf); err != nil {
		t.Fatalf("printOverview error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"ARIA singles chart",
		"Total entries: 4",
		"Unique artists: 3",
		"Date range: 2000-06-19 to 2010-03-06",
		"Australian entries: 3 (75.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTopArtists(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	if err := printTopArtists(&buf, 10, analysis.Filter{}); err != nil {
		t.Fatalf("printTopArtists error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Kylie Minogue") {
		t.Errorf("output missing top artist:\n%s", out)
	}
	if !strings.Contains(out, "Top 3 artists by chart appearances") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestPrintTopArtistsAustralianOnly(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	err := printTopArtists(&buf, 10, analysis.Filter{AustralianOnly: true})
	if err != nil {
		t.Fatalf("printTopArtists error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Coldplay") {
		t.Errorf("Australian-only output should not list Coldplay:\n%s", out)
	}
	if !strings.Contains(out, "(Australian only)") {
		t.Errorf("output missing filter note:\n%s", out)
	}
}

func TestPrintTopSongs(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	if err := printTopSongs(&buf, 10, "weeks", false); err != nil {
		t.Fatalf("printTopSongs error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Spinning Around") {
		t.Errorf("output missing top song:\n%s", out)
	}
}

func TestPrintTopSongsInvalidMetric(t *testing.T) {
	setTestSource(t)

	err := printTopSongs(&bytes.Buffer{}, 10, "alphabetical", false)
	if !errors.Is(err, analysis.ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestPrintArtistHistory(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	if err := printArtistHistory(&buf, "kylie", ""); err != nil {
		t.Fatalf("printArtistHistory error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Chart history: Kylie Minogue",
		"Total weeks on chart: 2",
		"Best chart position: #1",
		"Spinning Around (1 week at #1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintArtistHistoryNotFound(t *testing.T) {
	setTestSource(t)

	err := printArtistHistory(&bytes.Buffer{}, "nobody", "")
	if !errors.Is(err, analysis.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestPrintArtistHistoryWritesPlot(t *testing.T) {
	setTestSource(t)
	plotPath := filepath.Join(t.TempDir(), "history.png")

	var buf bytes.Buffer
	if err := printArtistHistory(&buf, "kylie", plotPath); err != nil {
		t.Fatalf("printArtistHistory error: %v", err)
	}
	data, err := os.ReadFile(plotPath)
	if err != nil {
		t.Fatalf("reading plot: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("plot file is not a PNG (%d bytes)", len(data))
	}
}

func TestPrintNationalContent(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	if err := printNationalContent(&buf, ""); err != nil {
		t.Fatalf("printNationalContent error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Australian entries: 3 (75.0%)") {
		t.Errorf("output missing overall share:\n%s", out)
	}
	if !strings.Contains(out, "Most Australian year: 2010") {
		t.Errorf("output missing most Australian year:\n%s", out)
	}
}

func TestPrintDecades(t *testing.T) {
	setTestSource(t)

	var buf bytes.Buffer
	if err := printDecades(&buf, ""); err != nil {
		t.Fatalf("printDecades error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "2000s") || !strings.Contains(out, "2010s") {
		t.Errorf("output missing decades:\n%s", out)
	}
	if !strings.Contains(out, "2 decades of chart data") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestExportInsights(t *testing.T) {
	setTestSource(t)
	path := filepath.Join(t.TempDir(), "analysis.txt")

	if err := exportInsights(path); err != nil {
		t.Fatalf("exportInsights error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "ARIA CHARTS ANALYSIS SUMMARY") {
		t.Errorf("export missing header:\n%s", out)
	}
	if !strings.Contains(out, "TOP 20 ARTISTS BY APPEARANCES:") {
		t.Errorf("export missing artist list:\n%s", out)
	}
}

func TestLoadDatasetBadChartType(t *testing.T) {
	setTestSource(t)
	viper.Set("chart", "vinyl")

	if _, err := loadDataset(); err == nil {
		t.Fatal("loadDataset should reject an unknown chart type")
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	viper.Set("source", filepath.Join(t.TempDir(), "missing.csv"))
	viper.Set("chart", "singles")
	t.Cleanup(func() { viper.Set("source", "") })

	if _, err := loadDataset(); err == nil {
		t.Fatal("loadDataset should fail for a missing file")
	}
}
