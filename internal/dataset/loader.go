package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/jszwec/csvutil"
)

// LoadError wraps any failure to resolve, fetch, or parse a chart source.
// Loader failures are terminal for the analysis session.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading chart data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var requiredColumns = []string{"chart_date", "artist", "title", "rank"}

// csvEntry mirrors one CSV row. aus_flag is kept raw because the column is
// optional and pandas-written files spell booleans "True"/"False".
type csvEntry struct {
	ChartDate csvDate `csv:"chart_date"`
	Artist    string  `csv:"artist"`
	Title     string  `csv:"title"`
	Rank      int     `csv:"rank"`
	AusFlag   string  `csv:"aus_flag"`
}

type csvDate struct {
	time.Time
}

func (d *csvDate) UnmarshalText(text []byte) error {
	t, err := time.Parse("2006-01-02", string(text))
	if err != nil {
		return fmt.Errorf("parsing chart_date %q: %w", text, err)
	}
	d.Time = t
	return nil
}

// Load reads one chart dataset. The source may be a CSV file, a directory
// holding the published chart files, an http(s) URL, or empty to fetch the
// chart from the dataset's GitHub repository.
func Load(source string, chartType ChartType) (*Dataset, error) {
	resolved, remote := resolveSource(source, chartType)

	var body io.Reader
	if remote {
		data, err := fetchURL(resolved)
		if err != nil {
			return nil, &LoadError{Source: resolved, Err: err}
		}
		body = bytes.NewReader(data)
	} else {
		f, err := os.Open(resolved)
		if err != nil {
			return nil, &LoadError{Source: resolved, Err: err}
		}
		defer f.Close()
		body = f
	}

	entries, hasAusFlag, err := parseCSV(body)
	if err != nil {
		return nil, &LoadError{Source: resolved, Err: err}
	}

	return New(chartType, entries, hasAusFlag)
}

func resolveSource(source string, chartType ChartType) (resolved string, remote bool) {
	if source == "" {
		return chartType.URL(), true
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return source, true
	}
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		return filepath.Join(source, chartType.FileName()), false
	}
	return source, false
}

type statusError struct {
	url  string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.url, e.code)
}

func fetchURL(url string) ([]byte, error) {
	client := &http.Client{Timeout: 60 * time.Second}

	var data []byte
	err := retry.Do(
		func() error {
			resp, err := client.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return &statusError{url: url, code: resp.StatusCode}
			}
			data, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Attempts(3),
		retry.RetryIf(func(err error) bool {
			var se *statusError
			return errors.As(err, &se) && se.code/100 == 5
		}),
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func parseCSV(r io.Reader) (entries []ChartEntry, hasAusFlag bool, err error) {
	csvReader := csv.NewReader(r)
	dec, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		return nil, false, fmt.Errorf("reading CSV header: %w", err)
	}

	header := dec.Header()
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, false, fmt.Errorf("missing required column %q", col)
		}
	}
	hasAusFlag = present["aus_flag"]

	row := 1
	for {
		var rec csvEntry
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, false, fmt.Errorf("row %d: %w", row, err)
		}
		if rec.Rank < 1 {
			return nil, false, fmt.Errorf("row %d: rank %d out of range", row, rec.Rank)
		}

		entry := ChartEntry{
			ChartDate: rec.ChartDate.Time,
			Artist:    rec.Artist,
			Title:     rec.Title,
			Position:  rec.Rank,
		}
		if hasAusFlag {
			flag, err := parseAusFlag(rec.AusFlag)
			if err != nil {
				return nil, false, fmt.Errorf("row %d: %w", row, err)
			}
			entry.Australian = flag
		}
		entries = append(entries, entry)
		row++
	}

	return entries, hasAusFlag, nil
}

func parseAusFlag(s string) (*bool, error) {
	var v bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "true", "1":
		v = true
	case "false", "0":
		v = false
	default:
		return nil, fmt.Errorf("parsing aus_flag %q", s)
	}
	return &v, nil
}
