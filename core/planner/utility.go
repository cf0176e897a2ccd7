package planner

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/hfrick/leaveplan/core/model"
)

// UtilityModel scores days and whole periods. A day is worth Baseline, plus
// Bonus when its weekday or exact date is preferred. A period additionally
// earns a duration bonus that grows linearly from GainStart up to GainCutoff
// and is flat beyond it, modelling diminishing returns on very long breaks.
type UtilityModel struct {
	Baseline float64
	Bonus    float64

	// MinValuedLength is the shortest period worth anything at all.
	MinValuedLength int

	GainStart  int
	GainCutoff int
	Scaler     float64

	PreferredWeekdays []time.Weekday
	PreferredDates    []time.Time
}

// DayValue returns the marginal value of a single day off. The bonus is
// applied at most once, weekday preference checked first.
func (m UtilityModel) DayValue(d time.Time) float64 {
	for _, wd := range m.PreferredWeekdays {
		if d.Weekday() == wd {
			return m.Baseline + m.Bonus
		}
	}
	day := model.Midnight(d)
	for _, pd := range m.PreferredDates {
		if day.Equal(model.Midnight(pd)) {
			return m.Baseline + m.Bonus
		}
	}
	return m.Baseline
}

// DurationBonus returns the duration-dependent utility component: zero below
// GainStart, then linear in the duration, capped at GainCutoff.
func (m UtilityModel) DurationBonus(duration int) float64 {
	if duration < m.GainStart {
		return 0
	}
	if duration > m.GainCutoff {
		return float64(m.GainCutoff-m.GainStart+1) * m.Scaler
	}
	return float64(duration-m.GainStart+1) * m.Scaler
}

// PeriodUtility scores a whole period: zero below MinValuedLength, otherwise
// the summed per-day values plus the duration bonus. This additive shape is
// the objective the optimizer maximises.
func (m UtilityModel) PeriodUtility(p model.Period) float64 {
	if p.Duration() < m.MinValuedLength {
		return 0
	}
	days := p.AllDays()
	values := make([]float64, len(days))
	for i, d := range days {
		values[i] = m.DayValue(d)
	}
	return floats.Sum(values) + m.DurationBonus(p.Duration())
}
