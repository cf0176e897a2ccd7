package model

import (
	"fmt"
	"time"
)

// Horizon is the fixed inclusive date range being planned over, a single
// contiguous run of calendar days (365 in practice).
type Horizon struct {
	Start time.Time
	End   time.Time
}

// NewHorizon validates and builds a horizon. Start must not be after end.
func NewHorizon(start, end time.Time) (Horizon, error) {
	start, end = Midnight(start), Midnight(end)
	if start.After(end) {
		return Horizon{}, fmt.Errorf("horizon start %s after end %s", start.Format(DateFormat), end.Format(DateFormat))
	}
	return Horizon{Start: start, End: end}, nil
}

// HorizonFrom builds a horizon of length days beginning at start.
func HorizonFrom(start time.Time, days int) (Horizon, error) {
	if days < 1 {
		return Horizon{}, fmt.Errorf("horizon length must be positive, got %d", days)
	}
	start = Midnight(start)
	return Horizon{Start: start, End: start.AddDate(0, 0, days-1)}, nil
}

// Length returns the number of days in the horizon.
func (h Horizon) Length() int {
	return int(h.End.Sub(h.Start).Hours()/24) + 1
}

// Contains reports whether the day lies within the horizon.
func (h Horizon) Contains(t time.Time) bool {
	d := Midnight(t)
	return !d.Before(h.Start) && !d.After(h.End)
}

// Days returns every day of the horizon in order.
func (h Horizon) Days() []time.Time {
	days := make([]time.Time, h.Length())
	for i := range days {
		days[i] = h.Start.AddDate(0, 0, i)
	}
	return days
}

// DayIndex returns the zero-based offset of the day from the horizon start.
// The day must lie within the horizon.
func (h Horizon) DayIndex(t time.Time) int {
	return int(Midnight(t).Sub(h.Start).Hours() / 24)
}

func (h Horizon) String() string {
	return fmt.Sprintf("%s - %s", h.Start.Format(DateFormat), h.End.Format(DateFormat))
}
