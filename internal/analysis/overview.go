package analysis

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ariatools/aria-chart-tools/internal/dataset"
)

// OverviewStats summarises a loaded chart dataset. The Australian fields are
// only meaningful when HasAusFlag is true.
type OverviewStats struct {
	ChartType         string
	Entries           int
	FirstDate         time.Time
	LastDate          time.Time
	YearsCovered      int
	Weeks             int
	Artists           int
	Titles            int
	BestPosition      int
	WorstPosition     int
	HasAusFlag        bool
	AustralianEntries int
	AustralianPct     float64
	AustralianArtists int
}

func Overview(ds *dataset.Dataset) (*OverviewStats, error) {
	if ds == nil {
		return nil, dataset.ErrNoData
	}

	stats := &OverviewStats{
		ChartType:  ds.ChartType().String(),
		HasAusFlag: ds.HasAusFlag(),
	}

	const query = `
	SELECT COUNT(*), MIN(chart_date), MAX(chart_date),
	       COUNT(DISTINCT strftime('%Y', datetime(chart_date, 'unixepoch'))),
	       COUNT(DISTINCT chart_date), COUNT(DISTINCT artist), COUNT(DISTINCT title),
	       MIN(position), MAX(position)
	FROM chart_entry
	`
	var first, last, best, worst sql.NullInt64
	err := ds.QueryRow(query).Scan(&stats.Entries, &first, &last, &stats.YearsCovered,
		&stats.Weeks, &stats.Artists, &stats.Titles, &best, &worst)
	if err != nil {
		return nil, fmt.Errorf("summarising dataset: %w", err)
	}
	if first.Valid {
		stats.FirstDate = time.Unix(first.Int64, 0).UTC()
	}
	if last.Valid {
		stats.LastDate = time.Unix(last.Int64, 0).UTC()
	}
	if best.Valid {
		stats.BestPosition = int(best.Int64)
	}
	if worst.Valid {
		stats.WorstPosition = int(worst.Int64)
	}

	if stats.HasAusFlag && stats.Entries > 0 {
		const ausQuery = `
		SELECT COUNT(*), COUNT(DISTINCT artist)
		FROM chart_entry
		WHERE is_australian = 1
		`
		err := ds.QueryRow(ausQuery).Scan(&stats.AustralianEntries, &stats.AustralianArtists)
		if err != nil {
			return nil, fmt.Errorf("counting Australian entries: %w", err)
		}
		stats.AustralianPct = float64(stats.AustralianEntries) / float64(stats.Entries) * 100
	}

	return stats, nil
}
