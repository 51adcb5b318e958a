package dataset

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoData is returned by queries against a nil dataset.
var ErrNoData = errors.New("no dataset loaded")

const schema = `
CREATE TABLE chart_entry (
  chart_date INTEGER NOT NULL,
  artist TEXT NOT NULL,
  title TEXT NOT NULL,
  position INTEGER NOT NULL,
  is_australian INTEGER
);
CREATE INDEX idx_chart_entry_artist ON chart_entry (artist);
CREATE INDEX idx_chart_entry_date ON chart_entry (chart_date);
`

// Dataset holds one loaded chart table. The backing database is in-memory
// and is never written to after New returns; queries are read-only.
type Dataset struct {
	chartType  ChartType
	db         *sql.DB
	count      int
	hasAusFlag bool
}

// New builds a dataset from a slice of entries. hasAusFlag records whether
// the source actually carried the aus_flag column; entries with a nil
// Australian field store NULL.
func New(chartType ChartType, entries []ChartEntry, hasAusFlag bool) (*Dataset, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A second pool connection would see a separate, empty in-memory
	// database, so the pool must stay at exactly one connection. Queries
	// therefore must not nest: drain one result set before starting the next.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	if err := insertEntries(db, entries); err != nil {
		db.Close()
		return nil, err
	}

	return &Dataset{
		chartType:  chartType,
		db:         db,
		count:      len(entries),
		hasAusFlag: hasAusFlag,
	}, nil
}

func insertEntries(db *sql.DB, entries []ChartEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO chart_entry (chart_date, artist, title, position, is_australian) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var aus interface{}
		if e.Australian != nil {
			if *e.Australian {
				aus = 1
			} else {
				aus = 0
			}
		}
		if _, err := stmt.Exec(e.ChartDate.UTC().Unix(), e.Artist, e.Title, e.Position, aus); err != nil {
			return fmt.Errorf("inserting entry for %q: %w", e.Artist, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (d *Dataset) ChartType() ChartType {
	return d.chartType
}

// Len is the number of loaded entries.
func (d *Dataset) Len() int {
	return d.count
}

// HasAusFlag reports whether the source carried the aus_flag column.
func (d *Dataset) HasAusFlag() bool {
	return d.hasAusFlag
}

// Query runs a read-only query against the loaded table.
func (d *Dataset) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return d.db.Query(query, args...)
}

// QueryRow runs a read-only single-row query against the loaded table.
func (d *Dataset) QueryRow(query string, args ...interface{}) *sql.Row {
	return d.db.QueryRow(query, args...)
}

func (d *Dataset) Close() error {
	return d.db.Close()
}
