package analysis

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

// ErrArtistNotFound means an artist search matched nothing. This is a normal
// empty result, not a dataset failure.
var ErrArtistNotFound = errors.New("no matching artist")

// TitleRun is a title with its number of weeks at #1.
type TitleRun struct {
	Title string
	Weeks int
}

// TitlePeak is a title with its best position and weeks spent in the top 10.
type TitlePeak struct {
	Title string
	Peak  int
	Weeks int
}

// ArtistHistory is an artist's complete chart record. Entries holds the
// matched rows in chart order for further use such as plotting.
type ArtistHistory struct {
	DisplayName    string
	First          time.Time
	Last           time.Time
	TotalWeeks     int
	DistinctTitles int
	BestPosition   int
	AvgPosition    float64
	NumberOnes     []TitleRun
	TopTens        []TitlePeak
	Entries        []dataset.ChartEntry
}

const artistMatch = "instr(lower(artist), ?) > 0"

// History finds all entries whose artist contains name, case-insensitively.
// The display name is the most frequent exact artist string among matches.
func History(ds *dataset.Dataset, name string) (*ArtistHistory, error) {
	if ds == nil {
		return nil, dataset.ErrNoData
	}
	needle := strings.ToLower(name)

	h := &ArtistHistory{}
	err := ds.QueryRow(`
	SELECT artist FROM chart_entry
	WHERE `+artistMatch+`
	GROUP BY artist
	ORDER BY COUNT(*) DESC, artist ASC
	LIMIT 1
	`, needle).Scan(&h.DisplayName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w for %q", ErrArtistNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving artist name: %w", err)
	}

	var first, last int64
	err = ds.QueryRow(`
	SELECT MIN(chart_date), MAX(chart_date), COUNT(*), COUNT(DISTINCT title),
	       MIN(position), ROUND(AVG(position), 1)
	FROM chart_entry
	WHERE `+artistMatch, needle).Scan(&first, &last, &h.TotalWeeks, &h.DistinctTitles,
		&h.BestPosition, &h.AvgPosition)
	if err != nil {
		return nil, fmt.Errorf("querying career stats: %w", err)
	}
	h.First = time.Unix(first, 0).UTC()
	h.Last = time.Unix(last, 0).UTC()

	if h.NumberOnes, err = numberOneTitles(ds, needle); err != nil {
		return nil, err
	}
	if h.TopTens, err = topTenTitles(ds, needle); err != nil {
		return nil, err
	}
	if h.Entries, err = matchedEntries(ds, needle); err != nil {
		return nil, err
	}

	return h, nil
}

func numberOneTitles(ds *dataset.Dataset, needle string) ([]TitleRun, error) {
	rows, err := ds.Query(`
	SELECT title, COUNT(*)
	FROM chart_entry
	WHERE position = 1 AND `+artistMatch+`
	GROUP BY title
	ORDER BY COUNT(*) DESC, title ASC
	`, needle)
	if err != nil {
		return nil, fmt.Errorf("querying number ones: %w", err)
	}
	defer rows.Close()

	var runs []TitleRun
	for rows.Next() {
		var r TitleRun
		if err := rows.Scan(&r.Title, &r.Weeks); err != nil {
			return nil, fmt.Errorf("scanning number one: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func topTenTitles(ds *dataset.Dataset, needle string) ([]TitlePeak, error) {
	rows, err := ds.Query(`
	SELECT title, MIN(position), COUNT(*)
	FROM chart_entry
	WHERE position <= 10 AND `+artistMatch+`
	GROUP BY title
	ORDER BY MIN(position) ASC, title ASC
	LIMIT 10
	`, needle)
	if err != nil {
		return nil, fmt.Errorf("querying top tens: %w", err)
	}
	defer rows.Close()

	var peaks []TitlePeak
	for rows.Next() {
		var p TitlePeak
		if err := rows.Scan(&p.Title, &p.Peak, &p.Weeks); err != nil {
			return nil, fmt.Errorf("scanning top ten: %w", err)
		}
		peaks = append(peaks, p)
	}
	return peaks, rows.Err()
}

func matchedEntries(ds *dataset.Dataset, needle string) ([]dataset.ChartEntry, error) {
	rows, err := ds.Query(`
	SELECT chart_date, artist, title, position, is_australian
	FROM chart_entry
	WHERE `+artistMatch+`
	ORDER BY chart_date ASC, position ASC
	`, needle)
	if err != nil {
		return nil, fmt.Errorf("querying matched entries: %w", err)
	}
	defer rows.Close()

	var entries []dataset.ChartEntry
	for rows.Next() {
		var e dataset.ChartEntry
		var date int64
		var aus sql.NullInt64
		if err := rows.Scan(&date, &e.Artist, &e.Title, &e.Position, &aus); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.ChartDate = time.Unix(date, 0).UTC()
		if aus.Valid {
			v := aus.Int64 == 1
			e.Australian = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
