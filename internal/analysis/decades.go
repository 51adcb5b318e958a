package analysis

import (
	"database/sql"
	"fmt"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

// DecadeStats is one decade's aggregate record. AustralianPct is only
// meaningful when the dataset carries the aus_flag column.
type DecadeStats struct {
	Decade          int
	Entries         int
	DistinctArtists int
	DistinctTitles  int
	AustralianPct   float64
	TopArtist       string
	TopArtistWeeks  int
}

const decadeExpr = "(CAST(strftime('%Y', datetime(chart_date, 'unixepoch')) AS INTEGER) / 10) * 10"

// Decades compares chart activity across decades, ascending. The most
// frequent artist per decade breaks ties alphabetically.
func Decades(ds *dataset.Dataset) ([]DecadeStats, error) {
	if ds == nil {
		return nil, dataset.ErrNoData
	}

	rows, err := ds.Query(`
	SELECT ` + decadeExpr + ` AS decade,
	       COUNT(*), COUNT(DISTINCT artist), COUNT(DISTINCT title),
	       SUM(CASE WHEN is_australian = 1 THEN 1 ELSE 0 END)
	FROM chart_entry
	GROUP BY decade
	ORDER BY decade ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying decades: %w", err)
	}
	defer rows.Close()

	var results []DecadeStats
	for rows.Next() {
		var d DecadeStats
		var aus sql.NullInt64
		if err := rows.Scan(&d.Decade, &d.Entries, &d.DistinctArtists, &d.DistinctTitles, &aus); err != nil {
			return nil, fmt.Errorf("scanning decade: %w", err)
		}
		if d.Entries > 0 {
			d.AustralianPct = float64(aus.Int64) / float64(d.Entries) * 100
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range results {
		err := ds.QueryRow(`
		SELECT artist, COUNT(*)
		FROM chart_entry
		WHERE `+decadeExpr+` = ?
		GROUP BY artist
		ORDER BY COUNT(*) DESC, artist ASC
		LIMIT 1
		`, results[i].Decade).Scan(&results[i].TopArtist, &results[i].TopArtistWeeks)
		if err != nil {
			return nil, fmt.Errorf("querying top artist for %ds: %w", results[i].Decade, err)
		}
	}

	return results, nil
}
