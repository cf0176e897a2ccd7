package planner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hfrick/leaveplan/core/model"
)

// Summary aggregates per-period statistics of a plan for reporting.
type Summary struct {
	Periods           int     `json:"periods"`
	TotalCost         int     `json:"total_cost"`
	TotalUtility      float64 `json:"total_utility"`
	MeanPeriodCost    float64 `json:"mean_period_cost"`
	MeanPeriodUtility float64 `json:"mean_period_utility"`
	MaxPeriodUtility  float64 `json:"max_period_utility"`
	LongestPeriod     int     `json:"longest_period_days"`
	// FreeDaysSpanned counts days inside selected periods that consume no
	// budget (weekends and holidays bridged by the plan).
	FreeDaysSpanned int `json:"free_days_spanned"`
}

// Summarize computes plan statistics from the same cost and utility models
// the optimizer scored with.
func Summarize(plan *model.Plan, costs *CostTable, utility UtilityModel) Summary {
	s := Summary{Periods: len(plan.Periods), TotalCost: plan.TotalCost, TotalUtility: plan.TotalUtility}
	if len(plan.Periods) == 0 {
		return s
	}
	costVals := make([]float64, len(plan.Periods))
	utilVals := make([]float64, len(plan.Periods))
	for i, p := range plan.Periods {
		costVals[i] = float64(costs.PeriodCost(p))
		utilVals[i] = utility.PeriodUtility(p)
		if p.Duration() > s.LongestPeriod {
			s.LongestPeriod = p.Duration()
		}
		for _, d := range p.AllDays() {
			if costs.DayCost(d) == 0 {
				s.FreeDaysSpanned++
			}
		}
	}
	s.MeanPeriodCost = stat.Mean(costVals, nil)
	s.MeanPeriodUtility = stat.Mean(utilVals, nil)
	s.MaxPeriodUtility = floats.Max(utilVals)
	return s
}
