package planner

import (
	"time"

	"github.com/hfrick/leaveplan/core/model"
)

// CostTable maps every day of the horizon to its budget cost. Weekends and
// designated cost-free dates (public holidays, protected dates) cost 0,
// every other day costs 1: only working days draw down the annual budget,
// which is what lets a nine-day period spanning two weekends cost five.
type CostTable struct {
	horizon model.Horizon
	costs   []int
}

// NewCostTable builds the per-day cost lookup for the horizon. Every day of
// the horizon receives exactly one entry. Free dates outside the horizon are
// ignored.
func NewCostTable(h model.Horizon, freeDates []time.Time) *CostTable {
	free := make(map[time.Time]struct{}, len(freeDates))
	for _, d := range freeDates {
		free[model.Midnight(d)] = struct{}{}
	}
	costs := make([]int, h.Length())
	for i, day := range h.Days() {
		if model.IsWeekend(day) {
			continue
		}
		if _, ok := free[day]; ok {
			continue
		}
		costs[i] = 1
	}
	return &CostTable{horizon: h, costs: costs}
}

// Horizon returns the horizon the table was built for.
func (t *CostTable) Horizon() model.Horizon { return t.horizon }

// DayCost returns the budget cost of a single day. Days outside the horizon
// cost 0 by definition; the generator never produces them.
func (t *CostTable) DayCost(d time.Time) int {
	if !t.horizon.Contains(d) {
		return 0
	}
	return t.costs[t.horizon.DayIndex(d)]
}

// PeriodCost sums the daily costs over the period's days.
func (t *CostTable) PeriodCost(p model.Period) int {
	total := 0
	for _, d := range p.AllDays() {
		total += t.DayCost(d)
	}
	return total
}
