package analysis

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

// ErrMissingAusFlag means the loaded dataset has no aus_flag column. The
// national-content query is unavailable; everything else still works.
var ErrMissingAusFlag = errors.New("dataset has no aus_flag column")

// YearShare is one calendar year's Australian content share.
type YearShare struct {
	Year       int
	Entries    int
	Australian int
	Pct        float64
}

// NationalStats summarises Australian versus international content.
type NationalStats struct {
	Entries         int
	Australian      int
	Pct             float64
	Years           []YearShare
	MostAustralian  YearShare
	LeastAustralian YearShare
}

// NationalContent computes the overall and per-year Australian content
// share. Percentage ties between years break toward the earlier year.
func NationalContent(ds *dataset.Dataset) (*NationalStats, error) {
	if ds == nil {
		return nil, dataset.ErrNoData
	}
	if !ds.HasAusFlag() {
		return nil, ErrMissingAusFlag
	}

	stats := &NationalStats{}
	var aus sql.NullInt64
	err := ds.QueryRow(`
	SELECT COUNT(*), SUM(CASE WHEN is_australian = 1 THEN 1 ELSE 0 END)
	FROM chart_entry
	`).Scan(&stats.Entries, &aus)
	if err != nil {
		return nil, fmt.Errorf("counting Australian entries: %w", err)
	}
	stats.Australian = int(aus.Int64)
	if stats.Entries > 0 {
		stats.Pct = float64(stats.Australian) / float64(stats.Entries) * 100
	}

	rows, err := ds.Query(`
	SELECT CAST(strftime('%Y', datetime(chart_date, 'unixepoch')) AS INTEGER) AS year,
	       COUNT(*), SUM(CASE WHEN is_australian = 1 THEN 1 ELSE 0 END)
	FROM chart_entry
	GROUP BY year
	ORDER BY year ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying yearly shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var y YearShare
		if err := rows.Scan(&y.Year, &y.Entries, &y.Australian); err != nil {
			return nil, fmt.Errorf("scanning year: %w", err)
		}
		y.Pct = float64(y.Australian) / float64(y.Entries) * 100
		stats.Years = append(stats.Years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, y := range stats.Years {
		if i == 0 || y.Pct > stats.MostAustralian.Pct {
			stats.MostAustralian = y
		}
		if i == 0 || y.Pct < stats.LeastAustralian.Pct {
			stats.LeastAustralian = y
		}
	}

	return stats, nil
}
