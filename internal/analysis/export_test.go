package analysis

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

func TestWriteInsights(t *testing.T) {
	ds := newDataset(t, sampleEntries(t), true)

	var buf bytes.Buffer
	if err := WriteInsights(ds, &buf); err != nil {
		t.Fatalf("WriteInsights error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		strings.Repeat("=", 70),
		"ARIA CHARTS ANALYSIS SUMMARY",
		"Chart Type: singles",
		"Date Range: 2020-01-01 to 2020-01-08",
		"Total Entries: 3",
		"Unique Artists: 2",
		"TOP 20 ARTISTS BY APPEARANCES:",
		"  1. A (2)",
		"  2. B (1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteInsightsEmptyDataset(t *testing.T) {
	ds := newDataset(t, nil, false)

	var buf bytes.Buffer
	if err := WriteInsights(ds, &buf); err != nil {
		t.Fatalf("WriteInsights error: %v", err)
	}
	if !strings.Contains(buf.String(), "Date Range: (no entries)") {
		t.Errorf("empty dataset output:\n%s", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteInsightsWriteError(t *testing.T) {
	ds := newDataset(t, sampleEntries(t), true)

	err := WriteInsights(ds, failWriter{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestWriteInsightsNilDataset(t *testing.T) {
	err := WriteInsights(nil, &bytes.Buffer{})
	if !errors.Is(err, dataset.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
