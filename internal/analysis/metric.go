package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned for song metric names outside the closed set.
var ErrUnknownMetric = errors.New("unknown song metric")

// SongMetric selects how TopSongs ranks (artist, title) pairs.
type SongMetric int

const (
	// ByWeeks ranks by total weeks on the chart.
	ByWeeks SongMetric = iota
	// ByPeak ranks by best position reached.
	ByPeak
	// ByTop10 ranks by weeks spent in the top 10.
	ByTop10
	// ByNumberOne ranks by weeks spent at #1.
	ByNumberOne
)

func ParseSongMetric(s string) (SongMetric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weeks":
		return ByWeeks, nil
	case "peak":
		return ByPeak, nil
	case "top10":
		return ByTop10, nil
	case "number1":
		return ByNumberOne, nil
	}
	return ByWeeks, fmt.Errorf("%w: %q (expected weeks, peak, top10, or number1)", ErrUnknownMetric, s)
}

func (m SongMetric) String() string {
	switch m {
	case ByPeak:
		return "peak"
	case ByTop10:
		return "top10"
	case ByNumberOne:
		return "number1"
	default:
		return "weeks"
	}
}
