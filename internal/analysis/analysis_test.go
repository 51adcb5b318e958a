package analysis

import (
	"testing"
	"time"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

func entry(t *testing.T, date, artist, title string, position int, australian bool) dataset.ChartEntry {
	t.Helper()
	aus := australian
	return dataset.ChartEntry{
		ChartDate:  mustDate(t, date),
		Artist:     artist,
		Title:      title,
		Position:   position,
		Australian: &aus,
	}
}

func newDataset(t *testing.T, entries []dataset.ChartEntry, hasAusFlag bool) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(dataset.Singles, entries, hasAusFlag)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	t.Cleanup(func() { ds.Close() })
	return ds
}

// sampleEntries is a three-row table: artist A charts twice with one #1,
// artist B once with a #1, two of three rows Australian.
func sampleEntries(t *testing.T) []dataset.ChartEntry {
	t.Helper()
	return []dataset.ChartEntry{
		entry(t, "2020-01-01", "A", "X", 1, true),
		entry(t, "2020-01-08", "A", "X", 2, true),
		entry(t, "2020-01-01", "B", "Y", 1, false),
	}
}
