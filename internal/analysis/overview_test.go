package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

func TestOverview(t *testing.T) {
	ds := newDataset(t, sampleEntries(t), true)

	stats, err := Overview(ds)
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if stats.ChartType != "singles" {
		t.Errorf("chart type = %q, want singles", stats.ChartType)
	}
	if stats.Entries != 3 {
		t.Errorf("entries = %d, want 3", stats.Entries)
	}
	if got, want := stats.FirstDate, mustDate(t, "2020-01-01"); !got.Equal(want) {
		t.Errorf("first date = %v, want %v", got, want)
	}
	if got, want := stats.LastDate, mustDate(t, "2020-01-08"); !got.Equal(want) {
		t.Errorf("last date = %v, want %v", got, want)
	}
	if stats.YearsCovered != 1 {
		t.Errorf("years covered = %d, want 1", stats.YearsCovered)
	}
	if stats.Weeks != 2 {
		t.Errorf("weeks = %d, want 2", stats.Weeks)
	}
	if stats.Artists != 2 || stats.Titles != 2 {
		t.Errorf("artists/titles = %d/%d, want 2/2", stats.Artists, stats.Titles)
	}
	if stats.BestPosition != 1 || stats.WorstPosition != 2 {
		t.Errorf("best/worst = %d/%d, want 1/2", stats.BestPosition, stats.WorstPosition)
	}
	if !stats.HasAusFlag {
		t.Error("expected HasAusFlag")
	}
	if stats.AustralianEntries != 2 || stats.AustralianArtists != 1 {
		t.Errorf("australian entries/artists = %d/%d, want 2/1",
			stats.AustralianEntries, stats.AustralianArtists)
	}
	if math.Abs(stats.AustralianPct-200.0/3) > 0.01 {
		t.Errorf("australian pct = %f, want ~66.67", stats.AustralianPct)
	}
}

func TestOverviewEmptyDataset(t *testing.T) {
	ds := newDataset(t, nil, false)

	stats, err := Overview(ds)
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("entries = %d, want 0", stats.Entries)
	}
	if !stats.FirstDate.IsZero() || !stats.LastDate.IsZero() {
		t.Errorf("empty dataset should have zero dates, got %v/%v",
			stats.FirstDate, stats.LastDate)
	}
	if stats.BestPosition != 0 || stats.WorstPosition != 0 {
		t.Errorf("empty dataset positions = %d/%d, want 0/0",
			stats.BestPosition, stats.WorstPosition)
	}
}

func TestOverviewNilDataset(t *testing.T) {
	_, err := Overview(nil)
	if !errors.Is(err, dataset.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
