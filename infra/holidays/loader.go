package holidays

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hfrick/leaveplan/core/model"
)

// Location selects a public-holiday calendar.
type Location string

const (
	LocationBerlin Location = "Berlin"
	LocationMunich Location = "Munich"
)

// Holiday is one row of the public-holiday reference table.
type Holiday struct {
	Date    time.Time
	Name    string
	Weekday time.Weekday
}

// Loader reads public-holiday CSV datasets named
// <year>_public_holidays_<location>.csv with Date and Holiday columns.
type Loader struct {
	baseDir string
}

// NewLoader creates a loader rooted at the dataset directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{baseDir: baseDir}
}

// LoadPublicHolidays parses the dataset for the given year and location and
// returns its rows ordered by date. Malformed rows are reported as errors
// before the optimizer is ever invoked.
func (l *Loader) LoadPublicHolidays(year int, loc Location) ([]Holiday, error) {
	name := fmt.Sprintf("%d_public_holidays_%s.csv", year, loc)
	path := filepath.Join(l.baseDir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open holiday dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty dataset", name)
	}

	dateCol, nameCol := -1, -1
	for i, h := range rows[0] {
		switch h {
		case "Date":
			dateCol = i
		case "Holiday":
			nameCol = i
		}
	}
	if dateCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("%s: missing Date or Holiday column", name)
	}

	out := make([]Holiday, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) <= dateCol || len(row) <= nameCol {
			return nil, fmt.Errorf("%s: row %d is short", name, i+2)
		}
		d, err := model.ParseDate(row[dateCol])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", name, i+2, err)
		}
		out = append(out, Holiday{Date: d, Name: row[nameCol], Weekday: d.Weekday()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Dates extracts the plain date set the cost model needs.
func Dates(hs []Holiday) []time.Time {
	dates := make([]time.Time, len(hs))
	for i, h := range hs {
		dates[i] = h.Date
	}
	return dates
}
