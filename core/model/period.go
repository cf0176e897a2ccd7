package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDuration is returned when a period is constructed with a
// duration below one day.
var ErrInvalidDuration = errors.New("period duration must be at least one day")

// Period is a contiguous run of calendar days treated as one block of time
// off. It is immutable once constructed; candidates are created by the
// period generator and freely copied by value.
type Period struct {
	start    time.Time
	duration int
}

// NewPeriod creates a period starting on the given day. The start date is
// normalized to midnight UTC.
func NewPeriod(start time.Time, duration int) (Period, error) {
	if duration < 1 {
		return Period{}, ErrInvalidDuration
	}
	return Period{start: Midnight(start), duration: duration}, nil
}

// StartDate returns the first day of the period.
func (p Period) StartDate() time.Time { return p.start }

// Duration returns the period length in days.
func (p Period) Duration() int { return p.duration }

// EndDate returns the last day of the period, inclusive.
func (p Period) EndDate() time.Time {
	return p.start.AddDate(0, 0, p.duration-1)
}

// Contains reports whether the day lies within [StartDate, EndDate].
func (p Period) Contains(t time.Time) bool {
	d := Midnight(t)
	return !d.Before(p.start) && !d.After(p.EndDate())
}

// AllDays returns the period's days in order. Its length equals Duration.
func (p Period) AllDays() []time.Time {
	days := make([]time.Time, p.duration)
	for i := range days {
		days[i] = p.start.AddDate(0, 0, i)
	}
	return days
}

// Overlaps reports whether the two periods share at least one day.
func (p Period) Overlaps(o Period) bool {
	return !p.EndDate().Before(o.start) && !o.EndDate().Before(p.start)
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.start.Format(DateFormat), p.EndDate().Format(DateFormat))
}
