package analysis

import (
	"fmt"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

// SongStat is one (artist, title) pair's aggregate chart record. Which
// fields are populated depends on the metric: Weeks holds total weeks on
// chart for ByWeeks and ByPeak, and weeks in the top 10 for ByTop10;
// WeeksAtNumberOne and TotalWeeks are only filled for ByNumberOne.
type SongStat struct {
	Artist           string
	Title            string
	Peak             int
	Weeks            int
	WeeksAtNumberOne int
	TotalWeeks       int
}

// TopSongs returns up to n (artist, title) pairs ranked by the given metric.
func TopSongs(ds *dataset.Dataset, n int, metric SongMetric, filter Filter) ([]SongStat, error) {
	if ds == nil {
		return nil, dataset.ErrNoData
	}

	switch metric {
	case ByWeeks:
		return songsByWeeks(ds, n, filter)
	case ByPeak:
		return songsByPeak(ds, n, filter)
	case ByTop10:
		return songsByTop10(ds, n, filter)
	case ByNumberOne:
		return songsByNumberOne(ds, n, filter)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, metric)
	}
}

func songsByWeeks(ds *dataset.Dataset, n int, filter Filter) ([]SongStat, error) {
	cond, args := filter.sql("")
	query := fmt.Sprintf(`
	SELECT artist, title, COUNT(*), MIN(position)
	FROM chart_entry
	WHERE 1 = 1%s
	GROUP BY artist, title
	ORDER BY COUNT(*) DESC, artist ASC, title ASC
	LIMIT ?
	`, cond)
	return scanWeeksPeak(ds, query, append(args, n))
}

func songsByPeak(ds *dataset.Dataset, n int, filter Filter) ([]SongStat, error) {
	cond, args := filter.sql("")
	query := fmt.Sprintf(`
	SELECT artist, title, COUNT(*), MIN(position)
	FROM chart_entry
	WHERE 1 = 1%s
	GROUP BY artist, title
	ORDER BY MIN(position) ASC, COUNT(*) DESC, artist ASC, title ASC
	LIMIT ?
	`, cond)
	return scanWeeksPeak(ds, query, append(args, n))
}

func songsByTop10(ds *dataset.Dataset, n int, filter Filter) ([]SongStat, error) {
	cond, args := filter.sql("")
	query := fmt.Sprintf(`
	SELECT artist, title, COUNT(*), MIN(position)
	FROM chart_entry
	WHERE position <= 10%s
	GROUP BY artist, title
	ORDER BY COUNT(*) DESC, artist ASC, title ASC
	LIMIT ?
	`, cond)
	return scanWeeksPeak(ds, query, append(args, n))
}

func songsByNumberOne(ds *dataset.Dataset, n int, filter Filter) ([]SongStat, error) {
	// The total-weeks column counts the pair's entries in the filtered table
	// without the position restriction, so weeks at #1 is always <= total.
	subCond, subArgs := filter.sql("t.")
	cond, args := filter.sql("e.")
	query := fmt.Sprintf(`
	SELECT e.artist, e.title, COUNT(*),
	       (SELECT COUNT(*) FROM chart_entry t
	        WHERE t.artist = e.artist AND t.title = e.title%s)
	FROM chart_entry e
	WHERE e.position = 1%s
	GROUP BY e.artist, e.title
	ORDER BY COUNT(*) DESC, e.artist ASC, e.title ASC
	LIMIT ?
	`, subCond, cond)

	allArgs := append(subArgs, args...)
	allArgs = append(allArgs, n)

	rows, err := ds.Query(query, allArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying number-one songs: %w", err)
	}
	defer rows.Close()

	var results []SongStat
	for rows.Next() {
		var s SongStat
		if err := rows.Scan(&s.Artist, &s.Title, &s.WeeksAtNumberOne, &s.TotalWeeks); err != nil {
			return nil, fmt.Errorf("scanning song: %w", err)
		}
		s.Peak = 1
		results = append(results, s)
	}
	return results, rows.Err()
}

func scanWeeksPeak(ds *dataset.Dataset, query string, args []interface{}) ([]SongStat, error) {
	rows, err := ds.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying top songs: %w", err)
	}
	defer rows.Close()

	var results []SongStat
	for rows.Next() {
		var s SongStat
		if err := rows.Scan(&s.Artist, &s.Title, &s.Weeks, &s.Peak); err != nil {
			return nil, fmt.Errorf("scanning song: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
