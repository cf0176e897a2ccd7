package holidays

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hfrick/leaveplan/core/model"
)

func writeDataset(t *testing.T, name, data string) *Loader {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	return NewLoader(dir)
}

func TestLoadPublicHolidays(t *testing.T) {
	l := writeDataset(t, "2025_public_holidays_Berlin.csv",
		"Date,Holiday\n2025-05-01,Labour Day\n2025-01-01,New Year's Day\n2025-10-03,German Unity Day\n")

	hs, err := l.LoadPublicHolidays(2025, LocationBerlin)
	require.NoError(t, err)
	require.Len(t, hs, 3)

	// rows come back ordered by date
	require.True(t, hs[0].Date.Equal(model.Date(2025, time.January, 1)))
	require.Equal(t, "New Year's Day", hs[0].Name)
	require.Equal(t, time.Wednesday, hs[0].Weekday)
	require.True(t, hs[2].Date.Equal(model.Date(2025, time.October, 3)))

	dates := Dates(hs)
	require.Len(t, dates, 3)
	require.True(t, dates[1].Equal(model.Date(2025, time.May, 1)))
}

func TestLoadPublicHolidaysColumnOrder(t *testing.T) {
	l := writeDataset(t, "2025_public_holidays_Munich.csv",
		"Holiday,Date\nEpiphany,2025-01-06\n")
	hs, err := l.LoadPublicHolidays(2025, LocationMunich)
	require.NoError(t, err)
	require.Len(t, hs, 1)
	require.Equal(t, "Epiphany", hs[0].Name)
}

func TestLoadPublicHolidaysMissingFile(t *testing.T) {
	l := NewLoader(t.TempDir())
	_, err := l.LoadPublicHolidays(2025, LocationBerlin)
	require.Error(t, err)
}

func TestLoadPublicHolidaysMalformedRow(t *testing.T) {
	l := writeDataset(t, "2025_public_holidays_Berlin.csv",
		"Date,Holiday\nnot-a-date,Broken\n")
	_, err := l.LoadPublicHolidays(2025, LocationBerlin)
	require.Error(t, err)
}

func TestLoadPublicHolidaysMissingColumns(t *testing.T) {
	l := writeDataset(t, "2025_public_holidays_Berlin.csv",
		"When,What\n2025-01-01,New Year's Day\n")
	_, err := l.LoadPublicHolidays(2025, LocationBerlin)
	require.Error(t, err)
}
