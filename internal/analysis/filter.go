package analysis

import (
	"strings"
	"time"
)

// Filter narrows a query to a year range and/or Australian-flagged entries.
// The zero value matches everything. Years are inclusive; zero means
// unbounded on that side.
type Filter struct {
	StartYear      int
	EndYear        int
	AustralianOnly bool
}

// sql renders the filter as a conjunction fragment starting with " AND",
// or the empty string for the zero filter. prefix qualifies column names
// when the enclosing query aliases the table.
func (f Filter) sql(prefix string) (string, []interface{}) {
	var b strings.Builder
	var args []interface{}

	if f.StartYear != 0 {
		b.WriteString(" AND " + prefix + "chart_date >= ?")
		args = append(args, yearStart(f.StartYear))
	}
	if f.EndYear != 0 {
		b.WriteString(" AND " + prefix + "chart_date < ?")
		args = append(args, yearStart(f.EndYear+1))
	}
	if f.AustralianOnly {
		b.WriteString(" AND " + prefix + "is_australian = 1")
	}

	return b.String(), args
}

func yearStart(year int) int64 {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
}
