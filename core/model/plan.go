package model

import "time"

// Plan is the terminal output of one optimizer run: an ordered, pairwise
// disjoint sequence of periods within budget. It is never mutated after
// creation; rendering and reporting consume it read-only.
type Plan struct {
	ID           string
	Horizon      Horizon
	Periods      []Period
	TotalCost    int
	TotalUtility float64
}

// Covers reports whether the day falls inside one of the selected periods.
func (p *Plan) Covers(t time.Time) bool {
	for _, per := range p.Periods {
		if per.Contains(t) {
			return true
		}
	}
	return false
}

// Days returns the union of all selected periods' days in order.
func (p *Plan) Days() []time.Time {
	var days []time.Time
	for _, per := range p.Periods {
		days = append(days, per.AllDays()...)
	}
	return days
}
