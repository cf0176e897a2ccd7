package planner

import "github.com/hfrick/leaveplan/core/model"

// GeneratePeriods enumerates the full candidate universe: one period for
// every start day in the horizon and every duration in [1, maxLen] whose
// last day still lies within the horizon. Periods extending past the
// horizon end are never produced, so downstream scoring can trust every
// candidate.
func GeneratePeriods(h model.Horizon, maxLen int) []model.Period {
	n := h.Length()
	if maxLen > n {
		maxLen = n
	}
	periods := make([]model.Period, 0, n*maxLen)
	for i, day := range h.Days() {
		limit := maxLen
		if rest := n - i; rest < limit {
			limit = rest
		}
		for k := 1; k <= limit; k++ {
			p, err := model.NewPeriod(day, k)
			if err != nil {
				continue
			}
			periods = append(periods, p)
		}
	}
	return periods
}
