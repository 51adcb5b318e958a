package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

// Fetch mirrors the three published chart CSVs into dir so later sessions
// can load them offline. Requests are spaced out to be polite to GitHub.
func Fetch(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)
	for _, chartType := range []ChartType{Singles, Albums, NewSingles} {
		if err := limiter.Wait(context.Background()); err != nil {
			return err
		}

		data, err := fetchURL(chartType.URL())
		if err != nil {
			return fmt.Errorf("fetching %s chart: %w", chartType, err)
		}

		path := filepath.Join(dir, chartType.FileName())
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Fetched %s chart to %s\n", chartType, path)
	}
	return nil
}
