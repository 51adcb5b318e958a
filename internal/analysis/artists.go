package analysis

import (
	"fmt"
	"time"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

// ArtistStat is one artist's aggregate chart record.
type ArtistStat struct {
	Artist        string
	Appearances   int
	BestPosition  int
	AvgPosition   float64
	FirstChart    time.Time
	LastChart     time.Time
	NumberOneHits int
}

// TopArtists returns up to n artists ordered by chart appearances. Ties on
// appearance count break lexicographically by artist name.
func TopArtists(ds *dataset.Dataset, n int, filter Filter) ([]ArtistStat, error) {
	if ds == nil {
		return nil, dataset.ErrNoData
	}

	cond, args := filter.sql("")
	query := fmt.Sprintf(`
	SELECT artist, COUNT(*), MIN(position), ROUND(AVG(position), 1),
	       MIN(chart_date), MAX(chart_date),
	       SUM(CASE WHEN position = 1 THEN 1 ELSE 0 END)
	FROM chart_entry
	WHERE 1 = 1%s
	GROUP BY artist
	ORDER BY COUNT(*) DESC, artist ASC
	LIMIT ?
	`, cond)
	args = append(args, n)

	rows, err := ds.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying top artists: %w", err)
	}
	defer rows.Close()

	var results []ArtistStat
	for rows.Next() {
		var s ArtistStat
		var first, last int64
		if err := rows.Scan(&s.Artist, &s.Appearances, &s.BestPosition, &s.AvgPosition,
			&first, &last, &s.NumberOneHits); err != nil {
			return nil, fmt.Errorf("scanning artist: %w", err)
		}
		s.FirstChart = time.Unix(first, 0).UTC()
		s.LastChart = time.Unix(last, 0).UTC()
		results = append(results, s)
	}
	return results, rows.Err()
}
